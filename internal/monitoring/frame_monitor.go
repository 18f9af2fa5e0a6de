package monitoring

import (
	"sync"
	"sync/atomic"
	"time"
)

// FrameMonitor tracks frame cadence and how many input events each frame carried
type FrameMonitor struct {
	// Frame metrics
	frameCount atomic.Uint64
	frameTime  atomic.Uint64 // nanoseconds spent in the last frame

	// Input metrics
	eventsProcessed atomic.Uint64
	lastBatchSize   atomic.Int32
	largestBatch    atomic.Int32

	// Statistics
	mutex        sync.RWMutex
	avgFrameTime float64 // exponential moving average, nanoseconds
	lastStart    time.Time
	avgInterval  float64 // exponential moving average between frame starts, nanoseconds
	startTime    time.Time

	now func() time.Time
}

// smoothing weight of the newest sample in the moving averages
const smoothing = 0.1

// NewFrameMonitor creates a new frame monitor
func NewFrameMonitor() *FrameMonitor {
	return newFrameMonitor(time.Now)
}

func newFrameMonitor(now func() time.Time) *FrameMonitor {
	return &FrameMonitor{
		startTime: now(),
		now:       now,
	}
}

// FrameTimer helps measure frame timing
type FrameTimer struct {
	monitor   *FrameMonitor
	startTime time.Time
}

// StartFrame begins frame timing
func (fm *FrameMonitor) StartFrame() *FrameTimer {
	start := fm.now()

	fm.mutex.Lock()
	if !fm.lastStart.IsZero() {
		fm.avgInterval = ema(fm.avgInterval, float64(start.Sub(fm.lastStart).Nanoseconds()))
	}
	fm.lastStart = start
	fm.mutex.Unlock()

	return &FrameTimer{
		monitor:   fm,
		startTime: start,
	}
}

// EndFrame completes frame timing
func (ft *FrameTimer) EndFrame() {
	frameTime := ft.monitor.now().Sub(ft.startTime)
	ft.monitor.frameTime.Store(uint64(frameTime.Nanoseconds()))
	ft.monitor.frameCount.Add(1)

	ft.monitor.mutex.Lock()
	ft.monitor.avgFrameTime = ema(ft.monitor.avgFrameTime, float64(frameTime.Nanoseconds()))
	ft.monitor.mutex.Unlock()
}

func ema(avg, sample float64) float64 {
	if avg == 0 {
		return sample
	}
	return avg*(1-smoothing) + sample*smoothing
}

// RecordBatch records the number of events delivered in one frame
func (fm *FrameMonitor) RecordBatch(size int) {
	fm.eventsProcessed.Add(uint64(size))
	fm.lastBatchSize.Store(int32(size))
	for {
		largest := fm.largestBatch.Load()
		if int32(size) <= largest || fm.largestBatch.CompareAndSwap(largest, int32(size)) {
			return
		}
	}
}

// FrameStats is a point-in-time copy of the monitor's counters
type FrameStats struct {
	Frames          uint64
	EventsProcessed uint64
	LastBatchSize   int
	LargestBatch    int
	LastFrameTime   time.Duration
	AvgFrameTime    time.Duration
	FramesPerSecond float64
	Uptime          time.Duration
}

// Stats returns the current statistics
func (fm *FrameMonitor) Stats() FrameStats {
	fm.mutex.RLock()
	defer fm.mutex.RUnlock()

	fps := 0.0
	if fm.avgInterval > 0 {
		fps = float64(time.Second) / fm.avgInterval
	}

	return FrameStats{
		Frames:          fm.frameCount.Load(),
		EventsProcessed: fm.eventsProcessed.Load(),
		LastBatchSize:   int(fm.lastBatchSize.Load()),
		LargestBatch:    int(fm.largestBatch.Load()),
		LastFrameTime:   time.Duration(fm.frameTime.Load()),
		AvgFrameTime:    time.Duration(fm.avgFrameTime),
		FramesPerSecond: fps,
		Uptime:          fm.now().Sub(fm.startTime),
	}
}
