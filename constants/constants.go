package constants

import "os"

func GetListenAddr() string {
	addr := os.Getenv("SCOREPOINT_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

func GetAllowedOrigin() string {
	origin := os.Getenv("SCOREPOINT_ORIGIN")
	if origin != "" {
		return origin
	}
	return "*"
}

// Resolved events kept per serve session before the oldest fall off.
const SessionLimit = 512

// Ticks per quarter in exported session files.
const ExportTicks = 960
