package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	QueueRestock = "jobs:restock"

	// dlqPrefix names the per-queue dead letter list where jobs that
	// cannot be processed land for manual inspection.
	dlqPrefix = "dlq:"
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// RestockPayload identifies a slot whose last unit was just vended.
type RestockPayload struct {
	MachineID   uint   `json:"machine_id"`
	MachineName string `json:"machine_name"`
	Location    string `json:"location"`
	SlotNumber  int    `json:"slot_number"`
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher { return &Dispatcher{rdb: rdb} }

// EnqueueRestock pushes a restock alert job to Redis.
func (d *Dispatcher) EnqueueRestock(ctx context.Context, payload RestockPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: "restock", Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, QueueRestock, encoded).Err()
}

// Handlers holds the processing side of each queue.
type Handlers struct {
	Restock *RestockWorker
}

// StartPool launches numWorkers goroutines consuming the job queues.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func StartPool(ctx context.Context, rdb *redis.Client, handlers *Handlers, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, handlers, i)
	}
	log.Info().Int("workers", numWorkers).Msg("worker pool started")
}

func runWorker(ctx context.Context, rdb *redis.Client, handlers *Handlers, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Int("worker", id).Msg("worker shutting down")
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx.
			result, err := rdb.BRPop(ctx, 5*time.Second, QueueRestock).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			processJob(ctx, rdb, handlers, result[0], result[1])
		}
	}
}

func processJob(ctx context.Context, rdb *redis.Client, handlers *Handlers, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		return
	}

	switch job.Type {
	case "restock":
		var payload RestockPayload
		if err := json.Unmarshal(job.Payload, &payload); err != nil {
			sendToDLQ(ctx, rdb, queue, &job, "bad payload: "+err.Error())
			return
		}
		if err := handlers.Restock.Handle(ctx, payload); err != nil {
			sendToDLQ(ctx, rdb, queue, &job, err.Error())
		}
	default:
		sendToDLQ(ctx, rdb, queue, &job, "unknown job type")
	}
}

// sendToDLQ parks a failed job on dlq:{queue} for manual inspection.
// Alerts are best-effort, so there is no retry loop: one failure, one
// DLQ entry.
func sendToDLQ(ctx context.Context, rdb *redis.Client, queue string, job *Job, reason string) {
	entry := struct {
		OriginalQueue string          `json:"original_queue"`
		JobType       string          `json:"job_type"`
		Payload       json.RawMessage `json:"payload"`
		Reason        string          `json:"reason"`
		FailedAt      string          `json:"failed_at"`
	}{queue, job.Type, job.Payload, reason, time.Now().UTC().Format(time.RFC3339)}

	data, err := json.Marshal(entry)
	if err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("dlq: failed to marshal entry")
		return
	}
	if err := rdb.LPush(ctx, dlqPrefix+queue, data).Err(); err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("dlq: failed to push entry")
		return
	}
	log.Warn().Str("queue", queue).Str("job_type", job.Type).Str("reason", reason).Msg("job moved to dead letter queue")
}
