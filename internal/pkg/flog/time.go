package flog

import "time"

func nowMs() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}
