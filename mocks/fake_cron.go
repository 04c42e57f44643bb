//+build !release

package mocks

import "sync"

// FakeCron records scheduled jobs and runs them on demand.
type FakeCron struct {
	sync.Mutex

	Specs []string
	jobs  map[int]func()
	next  int
}

// AddFunc schedules a new job.
func (c *FakeCron) AddFunc(spec string, cmd func()) (int, error) {
	c.Lock()
	defer c.Unlock()

	c.next++
	c.jobs[c.next] = cmd
	c.Specs = append(c.Specs, spec)
	return c.next, nil
}

// RemoveFunc removes scheduled job.
func (c *FakeCron) RemoveFunc(id int) {
	c.Lock()
	defer c.Unlock()

	delete(c.jobs, id)
}

// Stop does nothing.
func (c *FakeCron) Stop() {
}

// RunAll synchronously invokes every scheduled job.
func (c *FakeCron) RunAll() {
	c.Lock()
	jobs := make([]func(), 0, len(c.jobs))
	for _, v := range c.jobs {
		jobs = append(jobs, v)
	}
	c.Unlock()

	for _, v := range jobs {
		v()
	}
}

// Count returns number of scheduled jobs.
func (c *FakeCron) Count() int {
	c.Lock()
	defer c.Unlock()

	return len(c.jobs)
}

// FakeNewCron creates a fake cron provider.
func FakeNewCron() *FakeCron {
	return &FakeCron{
		jobs:  make(map[int]func()),
		Specs: make([]string, 0),
	}
}
