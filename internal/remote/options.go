// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package remote

import "time"

// Options carries the per-call filters understood by ContainerService.
// Build one per call with NewOptions and the chained setters.
type Options struct {
	IncludeLeaves  bool       `json:"leaves,omitempty"`
	ExperimenterID int64      `json:"experimenter,omitempty"`
	GroupID        int64      `json:"group,omitempty"`
	Counts         []string   `json:"counts,omitempty"`
	Start          *time.Time `json:"startTime,omitempty"`
	End            *time.Time `json:"endTime,omitempty"`
}

func NewOptions() *Options { return &Options{} }

// Leaves asks for images to be loaded at the bottom of hierarchies.
func (o *Options) Leaves() *Options {
	o.IncludeLeaves = true
	return o
}

// Exp restricts results to objects owned by the experimenter. Zero or a
// negative id leaves the filter unset.
func (o *Options) Exp(id int64) *Options {
	if id > 0 {
		o.ExperimenterID = id
	}
	return o
}

// Group restricts results to objects of the group.
func (o *Options) Group(id int64) *Options {
	if id > 0 {
		o.GroupID = id
	}
	return o
}

// CountFields asks for collection counts to be filled for the properties.
func (o *Options) CountFields(props ...string) *Options {
	o.Counts = append(o.Counts, props...)
	return o
}

// Timeframe restricts image results to the creation window. Either bound may
// be nil.
func (o *Options) Timeframe(start, end *time.Time) *Options {
	o.Start, o.End = start, end
	return o
}

// Counted reports whether the property was requested in CountFields.
func (o *Options) Counted(prop string) bool {
	if o == nil {
		return false
	}
	for _, c := range o.Counts {
		if c == prop {
			return true
		}
	}
	return false
}

// InWindow reports whether t lies within the time window.
func (o *Options) InWindow(t *time.Time) bool {
	if o == nil || (o.Start == nil && o.End == nil) {
		return true
	}
	if t == nil {
		return false
	}
	if o.Start != nil && t.Before(*o.Start) {
		return false
	}
	if o.End != nil && t.After(*o.End) {
		return false
	}
	return true
}
