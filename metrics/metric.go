// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Counter tracks a monotonically increasing count.
type Counter interface {
	Inc()
	Add(delta int64)
	Read() int64
}

// counter implements Counter, optionally backed by a prometheus.Counter.
type counter struct {
	mu    sync.RWMutex
	value int64
	prom  prometheus.Counter
}

// NewCounter returns a Counter. If reg is non-nil the counter is also
// registered with prometheus under name/help; a registration failure is
// swallowed and the counter keeps tracking its value locally.
func NewCounter(name, help string, reg prometheus.Registerer) Counter {
	c := &counter{}
	if reg != nil {
		prom := prometheus.NewCounter(prometheus.CounterOpts{Name: name, Help: help})
		if err := reg.Register(prom); err == nil {
			c.prom = prom
		}
	}
	return c
}

func (c *counter) Inc() { c.Add(1) }

func (c *counter) Add(delta int64) {
	c.mu.Lock()
	c.value += delta
	c.mu.Unlock()
	if c.prom != nil {
		c.prom.Add(float64(delta))
	}
}

func (c *counter) Read() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Gauge tracks a value that can move up or down.
type Gauge interface {
	Set(value float64)
	Add(delta float64)
	Read() float64
}

type gauge struct {
	mu    sync.RWMutex
	value float64
	prom  prometheus.Gauge
}

// NewGauge returns a Gauge, optionally prometheus-registered (see NewCounter).
func NewGauge(name, help string, reg prometheus.Registerer) Gauge {
	g := &gauge{}
	if reg != nil {
		prom := prometheus.NewGauge(prometheus.GaugeOpts{Name: name, Help: help})
		if err := reg.Register(prom); err == nil {
			g.prom = prom
		}
	}
	return g
}

func (g *gauge) Set(value float64) {
	g.mu.Lock()
	g.value = value
	g.mu.Unlock()
	if g.prom != nil {
		g.prom.Set(value)
	}
}

func (g *gauge) Add(delta float64) {
	g.mu.Lock()
	g.value += delta
	g.mu.Unlock()
	if g.prom != nil {
		g.prom.Add(delta)
	}
}

func (g *gauge) Read() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.value
}
