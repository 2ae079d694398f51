package queue

import (
	"github.com/vskvj3/ringq/internal/utils"
)

// MarshalBinary encodes the payloads, head to tail, as a msgpack array.
func (q *Queue) MarshalBinary() ([]byte, error) {
	return utils.EncodeValues(q.Values())
}

// UnmarshalBinary appends the payloads of a MarshalBinary snapshot at the
// tail. Either every payload is appended or, on allocation failure, none is
// and ErrAllocation is returned. A nil or freed queue gets ErrInvalidHandle.
func (q *Queue) UnmarshalBinary(data []byte) error {
	if !q.lazyInit() {
		return ErrInvalidHandle
	}
	values, err := utils.DecodeValues(data)
	if err != nil {
		return err
	}

	var staged ring
	staged.Init(nil)
	for _, v := range values {
		e := q.newElement(v)
		if e == nil {
			releaseAll(&staged)
			return ErrAllocation
		}
		staged.AddTail(&e.list)
	}
	staged.SpliceTail(&q.head)
	return nil
}
