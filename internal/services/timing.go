package services

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// slowCall is the duration above which TrackTime logs at info level.
const slowCall = 500 * time.Millisecond

// TrackTime logs how long an operation took. Use as
// defer TrackTime("PricingService.LoadSeries", time.Now()).
func TrackTime(op string, start time.Time) {
	elapsed := time.Since(start)
	entry := log.WithFields(log.Fields{"op": op, "elapsed_ms": elapsed.Milliseconds()})
	if elapsed > slowCall {
		entry.Info("slow operation")
		return
	}
	entry.Debug("operation finished")
}
