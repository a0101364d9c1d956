package service

import "github.com/alexanderramin/planmyday/internal/app"

var _ app.OptimizeUseCase = (*OptimizeService)(nil)
