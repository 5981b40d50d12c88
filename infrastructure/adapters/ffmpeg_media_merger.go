package adapters

import (
	"context"
	"generate-ad-video/application/ports/outbound"
	"generate-ad-video/domain"
	"github.com/google/uuid"
	"os"
	"os/exec"
)

// ffmpegMediaMerger muxes the generated video with the voiceover track.
// Inputs come from the media store, work happens on local temp files, the
// result goes back through the store. The -shortest flag trims both
// streams to the shorter duration.
type ffmpegMediaMerger struct {
	logger outbound.LoggerPort
	store  outbound.MediaStorePort
}

func NewFFMPEGMediaMerger(logger outbound.LoggerPort, store outbound.MediaStorePort) outbound.MediaMergerPort {
	return &ffmpegMediaMerger{
		logger: logger,
		store:  store,
	}
}

func (m *ffmpegMediaMerger) Merge(ctx context.Context, video domain.ArtifactRef, audio domain.ArtifactRef) (domain.ArtifactRef, error) {
	videoContent, err := m.store.Get(ctx, video)
	if err != nil {
		return domain.ArtifactRef{}, err
	}
	audioContent, err := m.store.Get(ctx, audio)
	if err != nil {
		return domain.ArtifactRef{}, err
	}

	mergeID := uuid.NewString()
	videoFile := "/tmp/merge_video_" + mergeID + ".mp4"
	audioFile := "/tmp/merge_audio_" + mergeID + ".mp3"
	outputFile := "/tmp/merge_final_" + mergeID + ".mp4"

	defer m.cleanup(videoFile, audioFile, outputFile)

	if err := os.WriteFile(videoFile, videoContent, 0600); err != nil {
		m.logger.Error(err, "Failed to write the video temp file")
		return domain.ArtifactRef{}, err
	}
	if err := os.WriteFile(audioFile, audioContent, 0600); err != nil {
		m.logger.Error(err, "Failed to write the audio temp file")
		return domain.ArtifactRef{}, err
	}

	cmd := exec.CommandContext(ctx, "ffmpeg", "-i", videoFile, "-i", audioFile,
		"-c:v", "copy", "-c:a", "aac", "-b:a", "192k", "-shortest", "-y", outputFile)
	if err := cmd.Run(); err != nil {
		m.logger.ErrorWithFields(err, "ffmpeg merge failed", map[string]interface{}{
			"video": video.Key,
			"audio": audio.Key,
		})
		return domain.ArtifactRef{}, err
	}

	merged, err := os.ReadFile(outputFile)
	if err != nil {
		m.logger.Error(err, "Failed to read the merged file")
		return domain.ArtifactRef{}, err
	}

	return m.store.Put(ctx, outbound.PutMediaParams{
		Content:     merged,
		Kind:        domain.MergedVideoMediaKind,
		ContentType: "video/mp4",
	})
}

func (m *ffmpegMediaMerger) cleanup(files ...string) {
	for _, file := range files {
		if err := os.Remove(file); err != nil && !os.IsNotExist(err) {
			m.logger.Error(err, "Failed to remove temp file")
		}
	}
}
