package services

import (
	"context"
	"fmt"
	"generate-ad-video/application/ports/outbound"
	"generate-ad-video/domain"
	"sync"
	"time"
)

type nopLogger struct{}

func (nopLogger) Info(string)                                        {}
func (nopLogger) InfoWithFields(string, map[string]interface{})      {}
func (nopLogger) Error(error, string)                                {}
func (nopLogger) ErrorWithFields(error, string, map[string]interface{}) {
}
func (nopLogger) Debug(string)                                   {}
func (nopLogger) DebugWithFields(string, map[string]interface{}) {}
func (nopLogger) Warn(string)                                    {}
func (nopLogger) WarnWithFields(string, map[string]interface{})  {}

const validStrategyJSON = `{
	"image_prompt": "A cozy coffee shop interior with warm lighting",
	"video_prompt": "Slow pan across a busy coffee shop counter",
	"audio_script": "Your morning starts here. Visit us today."
}`

type fakePlanner struct {
	text  string
	err   error
	calls int
}

func (f *fakePlanner) Plan(context.Context, string) (string, error) {
	f.calls++
	return f.text, f.err
}

type fakeDirectGenerator struct {
	text  string
	err   error
	calls int
}

func (f *fakeDirectGenerator) Generate(context.Context, string) (string, error) {
	f.calls++
	return f.text, f.err
}

type fakeImageGenerator struct {
	err   error
	calls int
}

func (f *fakeImageGenerator) Generate(context.Context, string) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []byte("png"), nil
}

type fakeSpeechGenerator struct {
	err   error
	calls int
}

func (f *fakeSpeechGenerator) Synthesize(context.Context, string) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []byte("mp3"), nil
}

type memStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	puts    int
}

func newMemStore() *memStore {
	return &memStore{objects: make(map[string][]byte)}
}

func (s *memStore) Put(_ context.Context, params outbound.PutMediaParams) (domain.ArtifactRef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puts++
	key := fmt.Sprintf("%s-%d", params.Kind, s.puts)
	s.objects[key] = params.Content
	return domain.ArtifactRef{Key: key, Kind: params.Kind}, nil
}

func (s *memStore) Get(_ context.Context, ref domain.ArtifactRef) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	content, ok := s.objects[ref.Key]
	if !ok {
		return nil, fmt.Errorf("missing object %s", ref.Key)
	}
	return content, nil
}

// fakeVideoGenerator reports pending for a fixed number of checks, then
// succeeds, or always stays pending when pendingForever is set.
type fakeVideoGenerator struct {
	pendingBefore  int
	pendingForever bool
	submitErr      error
	failReason     string

	mu      sync.Mutex
	submits int
	checks  int
}

func (f *fakeVideoGenerator) Submit(context.Context, outbound.SubmitVideoJobParams) (domain.JobHandle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submits++
	if f.submitErr != nil {
		return domain.JobHandle{}, f.submitErr
	}
	return domain.JobHandle{ID: "job-1", SubmittedAt: time.Now()}, nil
}

func (f *fakeVideoGenerator) CheckStatus(context.Context, string) (domain.JobStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.checks++
	if f.pendingForever || f.checks <= f.pendingBefore {
		return domain.JobStatus{State: domain.JobPending}, nil
	}
	if f.failReason != "" {
		return domain.JobStatus{State: domain.JobFailed, Reason: f.failReason}, nil
	}
	return domain.JobStatus{
		State:    domain.JobSucceeded,
		Artifact: &domain.ArtifactRef{Key: "output/job-1/output.mp4", Kind: domain.VideoMediaKind},
	}, nil
}

// promptCapturingVideoGenerator records the submitted prompt and reports
// immediate success.
type promptCapturingVideoGenerator struct {
	prompt string
}

func (f *promptCapturingVideoGenerator) Submit(_ context.Context, params outbound.SubmitVideoJobParams) (domain.JobHandle, error) {
	f.prompt = params.Prompt
	return domain.JobHandle{ID: "job-1", SubmittedAt: time.Now()}, nil
}

func (f *promptCapturingVideoGenerator) CheckStatus(context.Context, string) (domain.JobStatus, error) {
	return domain.JobStatus{
		State:    domain.JobSucceeded,
		Artifact: &domain.ArtifactRef{Key: "output/job-1/output.mp4", Kind: domain.VideoMediaKind},
	}, nil
}

func putImageParams() outbound.PutMediaParams {
	return outbound.PutMediaParams{
		Content:     []byte("png"),
		Kind:        domain.ImageMediaKind,
		ContentType: "image/png",
	}
}

type fakeMerger struct {
	err   error
	calls int
}

func (f *fakeMerger) Merge(context.Context, domain.ArtifactRef, domain.ArtifactRef) (domain.ArtifactRef, error) {
	f.calls++
	if f.err != nil {
		return domain.ArtifactRef{}, f.err
	}
	return domain.ArtifactRef{Key: "final_videos/ad-1.mp4", Kind: domain.MergedVideoMediaKind}, nil
}

type progressCall struct {
	stage  domain.StageName
	status domain.StageStatus
}

type progressRecorder struct {
	calls []progressCall
}

func (r *progressRecorder) record(stage domain.StageName, status domain.StageStatus) {
	r.calls = append(r.calls, progressCall{stage: stage, status: status})
}

func (r *progressRecorder) callsFor(stage domain.StageName) []progressCall {
	var out []progressCall
	for _, call := range r.calls {
		if call.stage == stage {
			out = append(out, call)
		}
	}
	return out
}

func testRetry() RetryPolicy {
	return RetryPolicy{Attempts: 3, Backoff: time.Millisecond}
}
