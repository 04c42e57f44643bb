package home

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/gobwas/glob"
	"github.com/pkg/errors"
)

// Room groups devices under string keys.
type Room struct {
	sync.RWMutex

	name    string
	devices map[string]*Device
}

// NewRoom constructs an empty room.
func NewRoom(name string) *Room {
	return &Room{
		name:    name,
		devices: make(map[string]*Device),
	}
}

// GetName returns room name.
func (r *Room) GetName() string {
	return r.name
}

// AddDevice adds device under the key. Existing device is replaced.
func (r *Room) AddDevice(key string, d *Device) {
	r.Lock()
	defer r.Unlock()

	r.devices[key] = d
}

// GetDevice returns device by key.
func (r *Room) GetDevice(key string) (*Device, bool) {
	r.RLock()
	defer r.RUnlock()

	d, ok := r.devices[key]
	return d, ok
}

// DeleteDevice removes device by key.
func (r *Room) DeleteDevice(key string) error {
	r.Lock()
	defer r.Unlock()

	if _, ok := r.devices[key]; !ok {
		return &ErrDeviceNotFound{Name: key}
	}

	delete(r.devices, key)
	return nil
}

// Keys returns sorted device keys.
func (r *Room) Keys() []string {
	r.RLock()
	defer r.RUnlock()

	keys := make([]string, 0, len(r.devices))
	for k := range r.devices {
		keys = append(keys, k)
	}

	sort.Strings(keys)
	return keys
}

// FindDevices returns devices whose keys match glob pattern, ordered by key.
func (r *Room) FindDevices(pattern string) ([]*Device, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, errors.Wrap(err, "device pattern compile failed")
	}

	found := make([]*Device, 0)
	for _, k := range r.Keys() {
		if !g.Match(k) {
			continue
		}

		if d, ok := r.GetDevice(k); ok {
			found = append(found, d)
		}
	}

	return found, nil
}

// Report returns room description with a line per device.
func (r *Room) Report() string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("Room '%s':\n", r.name))
	for _, k := range r.Keys() {
		d, ok := r.GetDevice(k)
		if !ok {
			continue
		}

		sb.WriteString(fmt.Sprintf("| -- %s\n", d.Report()))
	}

	return sb.String()
}
