package contract

import "github.com/alexanderramin/planmyday/internal/app"

// The contract package is the stable, externally-consumed alias of the
// internal app port types — kept deliberately thin, the way
// contract.WhatNowRequest re-exports app.WhatNowRequest.

type OptimizeRequest = app.OptimizeRequest
type OptimizeResponse = app.OptimizeResponse
type WorkItems = app.WorkItems
type NurseConstraints = app.NurseConstraints
type BlockedOutTime = app.BlockedOutTime
type ScheduleItem = app.ScheduleItem
type UnachievableItem = app.UnachievableItem

type OptimizeErrorCode = app.OptimizeErrorCode
type OptimizeError = app.OptimizeError

const (
	ErrKnowledgeBaseUnavailable = app.ErrKnowledgeBaseUnavailable
)
