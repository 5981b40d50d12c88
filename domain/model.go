package domain

import "time"

type MediaKind string

const (
	ImageMediaKind       MediaKind = "image"
	VideoMediaKind       MediaKind = "video"
	AudioMediaKind       MediaKind = "audio"
	MergedVideoMediaKind MediaKind = "mergedVideo"
)

// ArtifactRef locates a generated media object in the store. The key is
// opaque to everything except the media store and the merger.
type ArtifactRef struct {
	Key  string    `json:"key"`
	Kind MediaKind `json:"kind"`
}

type Strategy struct {
	ImagePrompt     string `json:"image_prompt"`
	VideoPrompt     string `json:"video_prompt"`
	VoiceoverScript string `json:"audio_script"`
}

type JobHandle struct {
	ID          string
	SubmittedAt time.Time
}

type JobState string

const (
	JobPending   JobState = "pending"
	JobSucceeded JobState = "succeeded"
	JobFailed    JobState = "failed"
)

type JobStatus struct {
	State    JobState
	Artifact *ArtifactRef
	Reason   string
}

type StageName string

const (
	StrategyStage StageName = "strategy"
	ImageStage    StageName = "image"
	VideoStage    StageName = "video"
	AudioStage    StageName = "audio"
	MergeStage    StageName = "merge"
)

type StageStatus string

const (
	StageStarted   StageStatus = "started"
	StageSucceeded StageStatus = "succeeded"
	StageFailed    StageStatus = "failed"
)

type StageRecord struct {
	Stage     StageName   `json:"stage"`
	Status    StageStatus `json:"status"`
	Message   string      `json:"message"`
	Timestamp time.Time   `json:"timestamp"`
}

// PipelineContext is the mutable state of one pipeline run. It is owned by
// the orchestrator: stages read it but never write it, and it is never
// shared between runs.
type PipelineContext struct {
	RunID       string
	Description string
	Strategy    *Strategy
	ImageRef    *ArtifactRef
	VideoRef    *ArtifactRef
	AudioRef    *ArtifactRef
	FinalRef    *ArtifactRef
	StageLog    []StageRecord
}

func NewPipelineContext(runID string, description string) *PipelineContext {
	return &PipelineContext{
		RunID:       runID,
		Description: description,
		StageLog:    make([]StageRecord, 0, 10),
	}
}

func (p *PipelineContext) AppendRecord(stage StageName, status StageStatus, message string) {
	p.StageLog = append(p.StageLog, StageRecord{
		Stage:     stage,
		Status:    status,
		Message:   message,
		Timestamp: time.Now(),
	})
}
