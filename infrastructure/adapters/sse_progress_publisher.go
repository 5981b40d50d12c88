package adapters

import (
	"encoding/json"
	"generate-ad-video/application/ports/outbound"
	"generate-ad-video/domain"
	"github.com/donovanhide/eventsource"
	"net/http"
	"strconv"
	"sync/atomic"
)

type progressEvent struct {
	id     string
	stage  domain.StageName
	status domain.StageStatus
}

func (e *progressEvent) Id() string {
	return e.id
}

func (e *progressEvent) Event() string {
	return "progress"
}

func (e *progressEvent) Data() string {
	payload, _ := json.Marshal(map[string]string{
		"stage":  string(e.stage),
		"status": string(e.status),
	})
	return string(payload)
}

// SSEProgressPublisher streams stage transitions to subscribers over
// server-sent events, one channel per run. Publishing goes through the
// worker pool so a slow subscriber never delays the pipeline.
type SSEProgressPublisher struct {
	logger     outbound.LoggerPort
	workerPool outbound.TaskDispatcher
	server     *eventsource.Server
	nextID     atomic.Int64
}

func NewSSEProgressPublisher(logger outbound.LoggerPort, workerPool outbound.TaskDispatcher) *SSEProgressPublisher {
	server := eventsource.NewServer()
	server.AllowCORS = true
	return &SSEProgressPublisher{
		logger:     logger,
		workerPool: workerPool,
		server:     server,
	}
}

func (p *SSEProgressPublisher) Publish(runID string, stage domain.StageName, status domain.StageStatus) {
	event := &progressEvent{
		id:     strconv.FormatInt(p.nextID.Add(1), 10),
		stage:  stage,
		status: status,
	}
	err := p.workerPool.Submit(func() {
		p.server.Publish([]string{runID}, event)
	})
	if err != nil {
		p.logger.Error(err, "Failed to submit progress publish task")
	}
}

// HandlerFor returns the HTTP handler serving one run's event stream.
func (p *SSEProgressPublisher) HandlerFor(runID string) http.HandlerFunc {
	return p.server.Handler(runID)
}

func (p *SSEProgressPublisher) Close() {
	p.server.Close()
}
