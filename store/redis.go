// Package store provides optional persistence of collected simulator
// samples to Redis, so a long-running collection job can checkpoint
// without holding every Samples value in memory for the whole run.
// Neither rmdp nor simulate depend on this package; it is wired in by
// cmd/rmdpctl when --redis-addr is given.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Writer pushes JSON-encoded samples onto per-run Redis lists, following
// the client-construction convention of the teacher's
// benchmarks/redis_cli.go (redis.NewClient(&redis.Options{Addr: ...}))
// and the encoding/json marshalling convention of cbft/network.go's
// Message type.
type Writer struct {
	client *redis.Client
	prefix string
}

// NewWriter connects to the Redis instance at addr. keyPrefix namespaces
// the lists this Writer appends to ("<prefix>:dec:<run>" and
// "<prefix>:exp:<run>").
func NewWriter(addr, keyPrefix string) *Writer {
	return &Writer{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		prefix: keyPrefix,
	}
}

// Close releases the underlying Redis client.
func (w *Writer) Close() error {
	return w.client.Close()
}

// decKey and expKey name the per-run lists a Writer appends to.
func (w *Writer) decKey(run int) string {
	return fmt.Sprintf("%s:dec:%d", w.prefix, run)
}

func (w *Writer) expKey(run int) string {
	return fmt.Sprintf("%s:exp:%d", w.prefix, run)
}

// decRecord and expRecord are the wire shape pushed to Redis: plain
// structs with exported fields so json.Marshal needs no custom
// MarshalJSON, unlike cbft.Message's hand-written one (the teacher
// reaches for a manual MarshalJSON only when a field must be hidden or
// reshaped, which none of these need).
type decRecord struct {
	DecStateFrom interface{} `json:"decstate_from"`
	Action       interface{} `json:"action"`
	ExpStateTo   interface{} `json:"expstate_to"`
	Step         int         `json:"step"`
	Run          int         `json:"run"`
}

type expRecord struct {
	ExpStateFrom interface{} `json:"expstate_from"`
	DecStateTo   interface{} `json:"decstate_to"`
	Reward       float64     `json:"reward"`
	Weight       float64     `json:"weight"`
	Step         int         `json:"step"`
	Run          int         `json:"run"`
}

// WriteDec appends one DecSample's fields to the run's decision-sample
// list. The fields are passed as interface{} rather than as a generic
// simulate.DecSample[D, A, E] so this package stays independent of the
// simulate package's type parameters; callers pass the fields straight
// out of a DecSample value.
func (w *Writer) WriteDec(ctx context.Context, decStateFrom, action, expStateTo interface{}, step, run int) error {
	bs, err := json.Marshal(decRecord{decStateFrom, action, expStateTo, step, run})
	if err != nil {
		return fmt.Errorf("marshal dec sample: %w", err)
	}
	return w.client.RPush(ctx, w.decKey(run), bs).Err()
}

// WriteExp appends one ExpSample's fields to the run's expectation-sample list.
func (w *Writer) WriteExp(ctx context.Context, expStateFrom, decStateTo interface{}, reward, weight float64, step, run int) error {
	bs, err := json.Marshal(expRecord{expStateFrom, decStateTo, reward, weight, step, run})
	if err != nil {
		return fmt.Errorf("marshal exp sample: %w", err)
	}
	return w.client.RPush(ctx, w.expKey(run), bs).Err()
}

// ReadDec and ReadExp return the raw JSON-encoded samples pushed for a
// run, for inspection or replay.
func (w *Writer) ReadDec(ctx context.Context, run int) ([]string, error) {
	return w.client.LRange(ctx, w.decKey(run), 0, -1).Result()
}

func (w *Writer) ReadExp(ctx context.Context, run int) ([]string, error) {
	return w.client.LRange(ctx, w.expKey(run), 0, -1).Result()
}
