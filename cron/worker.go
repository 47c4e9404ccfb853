package cron

import (
	"pillowstat/models"

	cron "github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Reconciler is the part of the availability service the worker drives.
type Reconciler interface {
	Reconcile() models.ReconcileReport
}

// InitReconcileWorker schedules periodic ledger repair. An empty schedule disables it and returns nil.
func InitReconcileWorker(schedule string, svc Reconciler, logger *zap.Logger) (*cron.Cron, error) {
	if schedule == "" {
		logger.Info("[ReconcileWorker] Disabled: no schedule configured")
		return nil, nil
	}

	c := cron.New()
	if _, err := c.AddFunc(schedule, reconcileJob(svc, logger)); err != nil {
		return nil, err
	}
	c.Start()
	logger.Info("[ReconcileWorker] Started", zap.String("schedule", schedule))
	return c, nil
}

func reconcileJob(svc Reconciler, logger *zap.Logger) func() {
	return func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("[ReconcileWorker] Run panicked", zap.Any("panic", r))
			}
		}()
		report := svc.Reconcile()
		logger.Debug("[ReconcileWorker] Run complete",
			zap.Int("unitsChecked", report.UnitsChecked),
			zap.Int("marked", report.Marked),
			zap.Int("released", report.Released))
	}
}
