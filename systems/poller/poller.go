// Package poller periodically refreshes network sockets state.
package poller

import (
	"time"

	"github.com/go-home-io/smarthome/plugins/common"
	"github.com/go-home-io/smarthome/plugins/helpers"
	"github.com/go-home-io/smarthome/providers"
	"github.com/go-home-io/smarthome/systems/logger"
	"github.com/go-home-io/smarthome/systems/netsocket"
	"github.com/go-home-io/smarthome/utils"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
)

const (
	// Logger system.
	logSystem = "poller"
	// DefaultTTL describes how long readings are kept.
	DefaultTTL = 5 * time.Minute
)

// Reading is a last confirmed socket state.
type Reading struct {
	On    bool    `json:"on"`
	Power float64 `json:"power"`
	Time  int64   `json:"time"`
}

// ConstructPoller has data required for a new poller.
type ConstructPoller struct {
	Sockets  []*netsocket.Guarded
	Cron     providers.ICronProvider
	Logger   common.ILoggerProvider
	Schedule string
	TTL      time.Duration
}

// Poller requests status and power of every connected socket on schedule.
type Poller struct {
	sockets []*netsocket.Guarded
	cron    providers.ICronProvider
	logger  common.ILoggerProvider
	cache   *cache.Cache
	jobID   int
}

// NewPoller constructs a new poller and schedules polling job.
func NewPoller(ctor *ConstructPoller) (*Poller, error) {
	ttl := ctor.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	p := &Poller{
		sockets: ctor.Sockets,
		cron:    ctor.Cron,
		logger: logger.NewComponentLogger(&logger.ConstructComponentLogger{
			SystemLogger: ctor.Logger,
			System:       logSystem,
		}),
	}

	// Keys are bounded by sockets count, expired readings are dropped on read.
	p.cache = cache.New(ttl, 0)

	id, err := p.cron.AddFunc(ctor.Schedule, p.Poll)
	if err != nil {
		p.logger.Error("Failed to schedule polling", err)
		return nil, errors.Wrap(err, "poller schedule failed")
	}

	p.jobID = id
	p.logger.Info("Scheduled sockets polling", "schedule", ctor.Schedule)
	return p, nil
}

// Poll refreshes every connected socket once.
// Failures are logged and not retried.
func (p *Poller) Poll() {
	for _, v := range p.sockets {
		if !v.IsConnected() {
			p.logger.Debug("Socket is not connected, skipping", common.LogDeviceNameToken, v.GetName())
			continue
		}

		on, power, err := v.Refresh()
		if err != nil {
			p.logger.Warn("Failed to refresh socket", common.LogDeviceNameToken, v.GetName(),
				common.LogErrorToken, err.Error())
			continue
		}

		p.cache.Set(v.GetName(), &Reading{On: on, Power: helpers.RoundTo(power, 2), Time: utils.TimeNow()}, cache.DefaultExpiration)
	}
}

// Reading returns last confirmed state of the socket, if it's not expired yet.
func (p *Poller) Reading(name string) (*Reading, bool) {
	v, ok := p.cache.Get(name)
	if !ok {
		return nil, false
	}

	return v.(*Reading), true
}

// Stop removes polling job.
func (p *Poller) Stop() {
	p.cron.RemoveFunc(p.jobID)
}
