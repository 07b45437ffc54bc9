// Package service controls the Apache system service through systemctl.
package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/ksyq12/apachemgr/internal/errors"
	"github.com/ksyq12/apachemgr/internal/executor"
	"github.com/ksyq12/apachemgr/internal/logger"
)

// Controller starts, stops, restarts and reloads a named system service.
type Controller interface {
	Start() error
	Stop() error
	Restart() error
	Reload() error
	IsActive() bool
	Service() string
}

// restartGrace is the wait between stop and start on restart. Apache
// sometimes needs a moment to release its listen sockets; starting too
// quickly fails with "address already in use".
const restartGrace = 3 * time.Second

// SystemdController implements Controller using systemctl.
type SystemdController struct {
	service string
	exec    executor.CommandExecutor
	sleep   func(time.Duration)
}

// NewSystemd creates a controller for the named service.
func NewSystemd(service string, exec executor.CommandExecutor) *SystemdController {
	return &SystemdController{
		service: service,
		exec:    exec,
		sleep:   time.Sleep,
	}
}

// SetSleep replaces the restart grace sleep, for tests.
func (c *SystemdController) SetSleep(sleep func(time.Duration)) {
	c.sleep = sleep
}

// Service returns the controlled service name.
func (c *SystemdController) Service() string {
	return c.service
}

// systemctl runs a systemctl verb against the service.
func (c *SystemdController) systemctl(verb string) error {
	logger.Debug("systemctl %s %s", verb, c.service)
	out, err := c.exec.Execute("systemctl", verb, c.service)
	if err != nil {
		return errors.Wrap(errors.ErrCodeService,
			fmt.Sprintf("systemctl %s %s failed: %s", verb, c.service, strings.TrimSpace(string(out))), err)
	}
	return nil
}

// Start starts the service.
func (c *SystemdController) Start() error {
	return c.systemctl("start")
}

// Stop stops the service. An unresolved service name here means an
// unsupported distro made it past identity resolution.
func (c *SystemdController) Stop() error {
	if c.service == "" {
		return errors.ErrServiceUnresolved
	}
	return c.systemctl("stop")
}

// Restart stops the service, waits out the port-release grace interval,
// then starts it again. Stop and start are sequential, never concurrent.
func (c *SystemdController) Restart() error {
	if err := c.Stop(); err != nil {
		return err
	}
	c.sleep(restartGrace)
	return c.Start()
}

// Reload asks the service to reload its configuration.
func (c *SystemdController) Reload() error {
	return c.systemctl("reload")
}

// IsActive reports whether the service is currently active.
func (c *SystemdController) IsActive() bool {
	out, err := c.exec.Execute("systemctl", "is-active", c.service)
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(out)) == "active"
}

// Mock is a test double for Controller.
type Mock struct {
	Name       string
	Active     bool
	StartErr   error
	StopErr    error
	ReloadErr  error
	Ops        []string
}

func (m *Mock) record(op string) { m.Ops = append(m.Ops, op) }

func (m *Mock) Start() error {
	m.record("start")
	if m.StartErr != nil {
		return m.StartErr
	}
	m.Active = true
	return nil
}

func (m *Mock) Stop() error {
	m.record("stop")
	if m.StopErr != nil {
		return m.StopErr
	}
	m.Active = false
	return nil
}

func (m *Mock) Restart() error {
	if err := m.Stop(); err != nil {
		return err
	}
	return m.Start()
}

func (m *Mock) Reload() error {
	m.record("reload")
	return m.ReloadErr
}

func (m *Mock) IsActive() bool { return m.Active }

func (m *Mock) Service() string {
	if m.Name == "" {
		return "apache2"
	}
	return m.Name
}
