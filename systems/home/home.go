// Package home contains rooms and devices hierarchy of a smart home.
package home

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Home groups rooms under string keys.
type Home struct {
	sync.RWMutex

	name  string
	rooms map[string]*Room
}

// NewHome constructs a new home. Rooms are keyed by their names.
func NewHome(name string, rooms ...*Room) *Home {
	h := &Home{
		name:  name,
		rooms: make(map[string]*Room),
	}

	for _, v := range rooms {
		h.rooms[v.GetName()] = v
	}

	return h
}

// GetName returns home name.
func (h *Home) GetName() string {
	return h.name
}

// AddRoom adds room under the key. Existing room is replaced.
func (h *Home) AddRoom(key string, r *Room) {
	h.Lock()
	defer h.Unlock()

	h.rooms[key] = r
}

// GetRoom returns room by key.
func (h *Home) GetRoom(key string) (*Room, bool) {
	h.RLock()
	defer h.RUnlock()

	r, ok := h.rooms[key]
	return r, ok
}

// DeleteRoom removes room by key.
func (h *Home) DeleteRoom(key string) error {
	h.Lock()
	defer h.Unlock()

	if _, ok := h.rooms[key]; !ok {
		return &ErrRoomNotFound{Name: key}
	}

	delete(h.rooms, key)
	return nil
}

// Keys returns sorted room keys.
func (h *Home) Keys() []string {
	h.RLock()
	defer h.RUnlock()

	keys := make([]string, 0, len(h.rooms))
	for k := range h.rooms {
		keys = append(keys, k)
	}

	sort.Strings(keys)
	return keys
}

// GetDeviceFromRoom looks up device in the room.
func (h *Home) GetDeviceFromRoom(room string, device string) (*Device, error) {
	r, ok := h.GetRoom(room)
	if !ok {
		return nil, &ErrRoomNotFound{Name: room}
	}

	d, ok := r.GetDevice(device)
	if !ok {
		return nil, &ErrDeviceNotFound{Name: device}
	}

	return d, nil
}

// Devices returns every device of the home, ordered by room and device keys.
func (h *Home) Devices() []*Device {
	devices := make([]*Device, 0)
	for _, rk := range h.Keys() {
		r, ok := h.GetRoom(rk)
		if !ok {
			continue
		}

		for _, dk := range r.Keys() {
			if d, ok := r.GetDevice(dk); ok {
				devices = append(devices, d)
			}
		}
	}

	return devices
}

// Report returns full home description.
func (h *Home) Report() string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("Home report: %s\n", h.name))
	for _, k := range h.Keys() {
		if r, ok := h.GetRoom(k); ok {
			sb.WriteString(r.Report())
		}
	}

	return sb.String()
}
