package main

import (
	"fmt"
	"strconv"
	"strings"
)

// Button actions. These travel inside component custom IDs, so they
// double as wire values.
const (
	actionDiscordFormat = "discord" // switch to the Discord tag layout
	actionUnixFormat    = "unix"    // switch back to the unix layout
	actionCopyUnix      = "copy"    // ephemeral copy of the raw epoch
)

const controlIDSep = ":"

// controlID identifies one button on one /timestamp reply. UserID and
// UnixMillis together form the cache key of the computed result;
// Action selects what the button does. Discord user IDs are numeric
// snowflakes and the action tags are fixed words, so the separator
// cannot collide with a component value.
type controlID struct {
	Action     string
	UserID     string
	UnixMillis int64
}

func (c controlID) String() string {
	return c.Action + controlIDSep + c.UserID + controlIDSep + strconv.FormatInt(c.UnixMillis, 10)
}

// CacheKey returns the key the originating command stored its result
// under. The action is excluded so every button on a message addresses
// the same entry.
func (c controlID) CacheKey() string {
	return c.UserID + controlIDSep + strconv.FormatInt(c.UnixMillis, 10)
}

// parseControlID reverses String. It rejects anything that does not
// split into exactly an action, a user ID, and an invocation time.
func parseControlID(s string) (controlID, error) {
	parts := strings.Split(s, controlIDSep)
	if len(parts) != 3 {
		return controlID{}, fmt.Errorf("malformed control id %q", s)
	}
	switch parts[0] {
	case actionDiscordFormat, actionUnixFormat, actionCopyUnix:
	default:
		return controlID{}, fmt.Errorf("unknown control action %q", parts[0])
	}
	millis, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return controlID{}, fmt.Errorf("malformed control id %q: %v", s, err)
	}
	return controlID{Action: parts[0], UserID: parts[1], UnixMillis: millis}, nil
}
