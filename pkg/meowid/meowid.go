package meowid

import (
	"strconv"
	"sync"
	"time"
)

// MeowID Format:
// Timestamp (41-bits)
// Node ID (11-bits)
// Increment (11-bits)

type MeowID = int64

const MeowerEpoch int64 = 1577836800000 // 2020-01-01 12am GMT

const (
	NodeIdBits    = 11
	IncrementBits = 11

	maxIncrement = (1 << IncrementBits) - 1
)

var NodeId int

var idIncrementLock = sync.Mutex{}
var idIncrementTs int64 = 0
var idIncrement int64 = 0

func Init(nodeId string) error {
	var err error
	NodeId, err = strconv.Atoi(nodeId)
	return err
}

func GenId() int64 {
	// Get timestamp
	ts := time.Now().UnixMilli()

	// Get increment
	idIncrementLock.Lock()
	if idIncrementTs != ts {
		idIncrementTs = ts
		idIncrement = 0
	} else if idIncrement >= maxIncrement {
		// Increment space for this millisecond is exhausted; spin into the
		// next one.
		idIncrementLock.Unlock()
		for time.Now().UnixMilli() == ts {
			continue
		}
		return GenId()
	} else {
		idIncrement += 1
	}
	increment := idIncrement
	idIncrementLock.Unlock()

	// Construct ID
	id := (ts - MeowerEpoch) << (NodeIdBits + IncrementBits)
	id |= int64(NodeId) << IncrementBits
	id |= increment

	return id
}
