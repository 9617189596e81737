// Package models contains data structures for the application's domain models.
package models

import "time"

// Record is the base shape shared by every persisted entity: a unique,
// immutable id and a creation timestamp, both stamped by the store when
// the record is first appended.
type Record struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// RecordID returns the record's unique identifier.
func (r *Record) RecordID() string { return r.ID }

// SetRecordID assigns the record's identifier. Used only at creation time.
func (r *Record) SetRecordID(id string) { r.ID = id }

// Created returns the record's creation timestamp.
func (r *Record) Created() time.Time { return r.CreatedAt }

// SetCreated assigns the record's creation timestamp.
func (r *Record) SetCreated(t time.Time) { r.CreatedAt = t }

// Touch updates the record's last-modified timestamp.
func (r *Record) Touch(t time.Time) { r.UpdatedAt = t }
