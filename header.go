// Package satsave implements a bidirectional codec for the binary
// save-file format of a factory-building game at header type 14, save
// version 52: Parse decodes a raw file into a Header and Body tree;
// Emit re-encodes that tree back to bytes.
package satsave

import (
	"time"

	"github.com/lordralinc/sat-sav-parse/cursor"
	"github.com/lordralinc/sat-sav-parse/errs"
)

const (
	supportedHeaderType  = 14
	supportedSaveVersion = 52

	ticksPerSecond  = 10_000_000
	epochOffsetDays = 719162
	secondsPerDay   = 86400
)

// SessionVisibility is the header's session_visibility enum.
type SessionVisibility uint8

const (
	VisibilityPrivate     SessionVisibility = 0
	VisibilityFriendsOnly SessionVisibility = 1
)

// Header is the fixed-shape SaveFileHeader prefix.
type Header struct {
	HeaderType          uint32
	SaveVersion         uint32
	BuildVersion        uint32
	SaveName            string
	MapName             string
	MapOptions          string
	SessionName         string
	PlayDurationSeconds uint32
	SaveTicks           uint64
	SessionVisibility   SessionVisibility
	EditorObjectVersion uint32
	ModMetadata         string
	ModFlags            uint32
	SaveID              string
	IsPartitionedWorld  bool
	CreativeModeEnabled bool
	Checksum            [16]byte
	IsCheat             bool
}

// PlayDuration returns the session's played time.
func (h *Header) PlayDuration() time.Duration {
	return time.Duration(h.PlayDurationSeconds) * time.Second
}

// SaveTime returns the save timestamp as a UTC time.Time, converting
// ticks (100ns units since year-1 proleptic Gregorian) to POSIX time by
// subtracting the year-1-to-1970 day offset.
func (h *Header) SaveTime() time.Time {
	totalSeconds := int64(h.SaveTicks) / ticksPerSecond
	posixSeconds := totalSeconds - epochOffsetDays*secondsPerDay
	return time.Unix(posixSeconds, 0).UTC()
}

// DecodeHeader reads a Header from the start of a save file.
func DecodeHeader(r *cursor.Reader) (*Header, error) {
	h := &Header{}
	var err error

	if h.HeaderType, err = r.U32(); err != nil {
		return nil, err
	}
	if h.HeaderType != supportedHeaderType {
		return nil, errs.New(errs.UnsupportedSaveHeaderVersion, "unsupported header type %d", h.HeaderType)
	}
	if h.SaveVersion, err = r.U32(); err != nil {
		return nil, err
	}
	if h.SaveVersion != supportedSaveVersion {
		return nil, errs.New(errs.UnsupportedSaveVersion, "unsupported save version %d", h.SaveVersion)
	}
	if h.BuildVersion, err = r.U32(); err != nil {
		return nil, err
	}
	if h.SaveName, err = r.String(); err != nil {
		return nil, err
	}
	if h.MapName, err = r.String(); err != nil {
		return nil, err
	}
	if h.MapOptions, err = r.String(); err != nil {
		return nil, err
	}
	if h.SessionName, err = r.String(); err != nil {
		return nil, err
	}
	if h.PlayDurationSeconds, err = r.U32(); err != nil {
		return nil, err
	}
	if h.SaveTicks, err = r.U64(); err != nil {
		return nil, err
	}
	visibility, err := r.U8()
	if err != nil {
		return nil, err
	}
	h.SessionVisibility = SessionVisibility(visibility)
	if h.EditorObjectVersion, err = r.U32(); err != nil {
		return nil, err
	}
	if h.ModMetadata, err = r.String(); err != nil {
		return nil, err
	}
	if h.ModFlags, err = r.U32(); err != nil {
		return nil, err
	}
	if h.SaveID, err = r.String(); err != nil {
		return nil, err
	}
	if h.IsPartitionedWorld, err = r.U32Bool(); err != nil {
		return nil, err
	}
	if h.CreativeModeEnabled, err = r.U32Bool(); err != nil {
		return nil, err
	}
	checksum, err := r.Raw(16)
	if err != nil {
		return nil, err
	}
	copy(h.Checksum[:], checksum)
	if h.IsCheat, err = r.U32Bool(); err != nil {
		return nil, err
	}
	return h, nil
}

// EncodeHeader writes h, the inverse of DecodeHeader.
func EncodeHeader(w *cursor.Writer, h *Header) {
	w.AddU32(h.HeaderType)
	w.AddU32(h.SaveVersion)
	w.AddU32(h.BuildVersion)
	w.AddString(h.SaveName)
	w.AddString(h.MapName)
	w.AddString(h.MapOptions)
	w.AddString(h.SessionName)
	w.AddU32(h.PlayDurationSeconds)
	w.AddU64(h.SaveTicks)
	w.AddU8(uint8(h.SessionVisibility))
	w.AddU32(h.EditorObjectVersion)
	w.AddString(h.ModMetadata)
	w.AddU32(h.ModFlags)
	w.AddString(h.SaveID)
	w.AddU32Bool(h.IsPartitionedWorld)
	w.AddU32Bool(h.CreativeModeEnabled)
	w.AddRaw(h.Checksum[:])
	w.AddU32Bool(h.IsCheat)
}
