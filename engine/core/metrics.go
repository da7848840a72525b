package core

import "sync"

// Number of frames the frame-time average is computed over.
const metricsAvgCount = 30

type metricsState struct {
	frameAvgCounter int
	msTimes         [metricsAvgCount]float64
	msAvg           float64
	frames          int32
	accumulatedMS   float64
	fps             float64
}

var onceMetrics sync.Once
var metrics *metricsState

// MetricsInitialize sets up frame metrics tracking. Idempotent.
func MetricsInitialize() error {
	onceMetrics.Do(func() {
		metrics = &metricsState{}
	})
	return nil
}

// MetricsUpdate records one finished frame. frameElapsedTime is in seconds;
// the engine calls this once per loop iteration.
func MetricsUpdate(frameElapsedTime float64) {
	if metrics == nil {
		return
	}

	frameMS := frameElapsedTime * 1000.0
	metrics.msTimes[metrics.frameAvgCounter] = frameMS
	if metrics.frameAvgCounter == metricsAvgCount-1 {
		sum := float64(0)
		for _, ms := range metrics.msTimes {
			sum += ms
		}
		metrics.msAvg = sum / metricsAvgCount
	}
	metrics.frameAvgCounter = (metrics.frameAvgCounter + 1) % metricsAvgCount

	// FPS is the frame count over each elapsed wall second.
	metrics.accumulatedMS += frameMS
	if metrics.accumulatedMS > 1000 {
		metrics.fps = float64(metrics.frames)
		metrics.accumulatedMS -= 1000
		metrics.frames = 0
	}
	metrics.frames++
}

// MetricsFrame returns the current frames per second and the averaged frame
// time in milliseconds.
func MetricsFrame() (fps float64, frameTimeMS float64) {
	if metrics == nil {
		return 0, 0
	}
	return metrics.fps, metrics.msAvg
}
