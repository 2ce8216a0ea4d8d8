// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// Serializers for catalog values, built on mus-go primitives. Each has the
// Marshal/Unmarshal/Size shape of a mus serializer.

var (
	IDMUS            = idMUS{}
	RunMUS           = runMUS{}
	KeywordRecordMUS = keywordRecordMUS{}
)

type idMUS struct{}

func (idMUS) Marshal(v ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(v ID) int {
	return varint.Uint64.Size(uint64(v))
}

// Timestamps are stored as Unix microseconds; the zero time is stored as 0.
type timeMUS struct{}

func (timeMUS) micros(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMicro()
}

func (m timeMUS) Marshal(t time.Time, bs []byte) int {
	return varint.Int64.Marshal(m.micros(t), bs)
}

func (timeMUS) Unmarshal(bs []byte) (time.Time, int, error) {
	v, n, err := varint.Int64.Unmarshal(bs)
	if err != nil || v == 0 {
		return time.Time{}, n, err
	}
	return time.UnixMicro(v).UTC(), n, nil
}

func (m timeMUS) Size(t time.Time) int {
	return varint.Int64.Size(m.micros(t))
}

var timeSer = timeMUS{}

type runMUS struct{}

func (runMUS) Marshal(v Run, bs []byte) (n int) {
	n = ord.String.Marshal(v.Id, bs)
	n += timeSer.Marshal(v.StartedAt, bs[n:])
	n += timeSer.Marshal(v.FinishedAt, bs[n:])
	n += ord.String.Marshal(v.OutputPath, bs[n:])
	n += varint.Uint64.Marshal(uint64(len(v.RawCounts)), bs[n:])
	for _, c := range v.RawCounts {
		n += varint.Uint64.Marshal(c, bs[n:])
	}
	n += varint.Uint64.Marshal(v.UniqueCount, bs[n:])
	n += varint.Uint64.Marshal(v.NewCount, bs[n:])
	return n
}

func (runMUS) Unmarshal(bs []byte) (v Run, n int, err error) {
	var n1 int
	if v.Id, n1, err = ord.String.Unmarshal(bs); err != nil {
		return
	}
	n += n1
	if v.StartedAt, n1, err = timeSer.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if v.FinishedAt, n1, err = timeSer.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if v.OutputPath, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	var length uint64
	if length, n1, err = varint.Uint64.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if length > uint64(RuleCount) {
		err = ErrInvalidRun
		return
	}
	if length > 0 {
		v.RawCounts = make([]uint64, length)
		for i := range v.RawCounts {
			if v.RawCounts[i], n1, err = varint.Uint64.Unmarshal(bs[n:]); err != nil {
				return
			}
			n += n1
		}
	}
	if v.UniqueCount, n1, err = varint.Uint64.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if v.NewCount, n1, err = varint.Uint64.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	return
}

func (runMUS) Size(v Run) (size int) {
	size = ord.String.Size(v.Id)
	size += timeSer.Size(v.StartedAt)
	size += timeSer.Size(v.FinishedAt)
	size += ord.String.Size(v.OutputPath)
	size += varint.Uint64.Size(uint64(len(v.RawCounts)))
	for _, c := range v.RawCounts {
		size += varint.Uint64.Size(c)
	}
	size += varint.Uint64.Size(v.UniqueCount)
	size += varint.Uint64.Size(v.NewCount)
	return size
}

type keywordRecordMUS struct{}

func (keywordRecordMUS) Marshal(v KeywordRecord, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Text, bs[n:])
	n += varint.Int64.Marshal(int64(v.Rule), bs[n:])
	n += ord.String.Marshal(v.FirstRunId, bs[n:])
	n += timeSer.Marshal(v.FirstSeen, bs[n:])
	n += ord.String.Marshal(v.LastRunId, bs[n:])
	n += timeSer.Marshal(v.LastSeen, bs[n:])
	return n
}

func (keywordRecordMUS) Unmarshal(bs []byte) (v KeywordRecord, n int, err error) {
	var n1 int
	if v.Id, n1, err = IDMUS.Unmarshal(bs); err != nil {
		return
	}
	n += n1
	if v.Text, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	var rule int64
	if rule, n1, err = varint.Int64.Unmarshal(bs[n:]); err != nil {
		return
	}
	v.Rule = Rule(rule)
	n += n1
	if v.FirstRunId, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if v.FirstSeen, n1, err = timeSer.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if v.LastRunId, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if v.LastSeen, n1, err = timeSer.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	return
}

func (keywordRecordMUS) Size(v KeywordRecord) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Text)
	size += varint.Int64.Size(int64(v.Rule))
	size += ord.String.Size(v.FirstRunId)
	size += timeSer.Size(v.FirstSeen)
	size += ord.String.Size(v.LastRunId)
	size += timeSer.Size(v.LastSeen)
	return size
}
