package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/planmyday/internal/app"
	"github.com/alexanderramin/planmyday/internal/kbs"
	"github.com/alexanderramin/planmyday/internal/normalize"
	"github.com/alexanderramin/planmyday/internal/scheduler"
)

// OptimizeService wires the Normalizer, Model Builder, Objective
// Composer, and Solution Extractor into the single optimize use case,
// the way whatNowServiceImpl wired aggregate loading, scoring, and
// allocation into one Recommend call.
type OptimizeService struct {
	kb            kbs.KnowledgeBase
	solverTimeout time.Duration
	observer      UseCaseObserver
}

// NewOptimizeService constructs an OptimizeService. observers is variadic
// so callers can omit it entirely and get NoopUseCaseObserver.
func NewOptimizeService(kb kbs.KnowledgeBase, solverTimeout time.Duration, observers ...UseCaseObserver) *OptimizeService {
	return &OptimizeService{
		kb:            kb,
		solverTimeout: solverTimeout,
		observer:      useCaseObserverOrNoop(observers),
	}
}

func (s *OptimizeService) Optimize(ctx context.Context, req app.OptimizeRequest) (*app.OptimizeResponse, error) {
	requestID := uuid.NewString()

	n, err := normalize.Normalize(req, s.kb)
	if err != nil {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			RequestID: requestID,
			NurseID:   req.NurseID,
			Policy:    string(n.Policy),
			Err:       err,
		})
		return fatalResponse(req, err), nil
	}

	if len(n.Activities) == 0 {
		response := &app.OptimizeResponse{
			NurseID:           req.NurseID,
			ScheduleDate:      req.ScheduleDate,
			OptimizedSchedule: []app.ScheduleItem{},
			UnachievableItems: []app.UnachievableItem{},
			OptimizationScore: 0,
			Warnings:          []string{"No activities to schedule"},
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			RequestID:     requestID,
			NurseID:       req.NurseID,
			Policy:        string(n.Policy),
			OutcomeStatus: string(scheduler.StatusSuccess),
		})
		return response, nil
	}

	scheduler.ApplyPolicyBoosts(n.Activities, n.Policy)

	bm, err := scheduler.BuildModel(n.ShiftStart, n.ShiftEnd, n.Activities, n.Lunch, n.Blocked)
	if err != nil {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			RequestID:     requestID,
			NurseID:       req.NurseID,
			Policy:        string(n.Policy),
			ActivityCount: len(n.Activities),
			Err:           err,
		})
		return fatalResponse(req, err), nil
	}

	scheduler.LinkLunchDeviation(bm, n.Lunch.PreferredStart)
	scheduler.ComposeObjective(bm, n.Policy)

	solution, status, err := scheduler.Solve(bm, s.solverTimeout)
	if err != nil {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			RequestID:     requestID,
			NurseID:       req.NurseID,
			Policy:        string(n.Policy),
			ActivityCount: len(n.Activities),
			Err:           err,
		})
		return nil, err
	}

	result := scheduler.Extract(bm, status, solution, n.Activities, n.Lunch, n.Blocked, n.Policy)

	response := &app.OptimizeResponse{
		NurseID:           req.NurseID,
		ScheduleDate:      req.ScheduleDate,
		OptimizedSchedule: result.Schedule,
		UnachievableItems: result.UnachievableItems,
		OptimizationScore: result.OptimizationScore,
		Warnings:          result.Warnings,
	}

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		RequestID:         requestID,
		NurseID:           req.NurseID,
		Policy:            string(n.Policy),
		ActivityCount:     len(n.Activities),
		OutcomeStatus:     string(status),
		OptimizationScore: result.OptimizationScore,
	})

	return response, nil
}

// fatalResponse converts an input-malformation failure into the spec's
// in-band fatal-response shape, per app.OptimizeUseCase's contract that
// request-level malformation is reported through the response, not the
// error return.
func fatalResponse(req app.OptimizeRequest, err error) *app.OptimizeResponse {
	message := err.Error()
	return &app.OptimizeResponse{
		NurseID:           req.NurseID,
		ScheduleDate:      req.ScheduleDate,
		OptimizedSchedule: []app.ScheduleItem{},
		UnachievableItems: []app.UnachievableItem{
			{ItemID: "ERROR", ItemType: "system", Reason: message},
		},
		OptimizationScore: 0,
		Warnings:          []string{message},
	}
}
