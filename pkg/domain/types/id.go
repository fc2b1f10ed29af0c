package types

import "github.com/google/uuid"

type (
	BatchID  string
	RecordID string
	CycleID  string
)

func NewBatchID() BatchID   { return BatchID(uuid.NewString()) }
func NewRecordID() RecordID { return RecordID(uuid.NewString()) }
func NewCycleID() CycleID   { return CycleID(uuid.NewString()) }

func (x BatchID) String() string  { return string(x) }
func (x RecordID) String() string { return string(x) }
func (x CycleID) String() string  { return string(x) }
