// Package jobs runs periodic work inside the order service process on a
// seconds-precision cron (github.com/robfig/cron/v3).
//
// DispatchJob takes the oldest order no rider has accepted and assigns the
// longest-registered idle rider that carries no active order. It uses the
// same compare-and-set path as a manual acceptance, so a rider who accepted
// first always keeps the order.
//
// The process entry wires it roughly as:
//
//	manager := jobs.NewJobManager(jobs.NewDispatchJob(handler, schedule, logger))
//	if err := manager.StartAll(); err != nil {
//		return err
//	}
//	<-ctx.Done()
//	manager.StopAll()
//
// An empty queue, no free rider and a lost version race are logged at debug
// level; every other failure at error level. If one job fails to start, the
// manager stops the ones it already started.
package jobs
