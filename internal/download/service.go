package download

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/gaan/gaan-downloader/internal/convert"
	"github.com/gaan/gaan-downloader/internal/model"
	"github.com/gaan/gaan-downloader/internal/platform"
	"github.com/gaan/gaan-downloader/internal/stream"
)

// JobIDPrefix is prepended to every job ID
const JobIDPrefix = "job-"

// Service runs downloads one job at a time per call
type Service struct {
	fs        afero.Fs
	processor convert.Processor
	jobsMutex sync.Mutex
	onUpdate  func(*model.DownloadJob) // callback for UI updates
	log       *logrus.Entry
}

// NewService creates a new download service writing to fs
func NewService(fs afero.Fs, processor convert.Processor) *Service {
	return &Service{
		fs:        fs,
		processor: processor,
		log:       logrus.WithField("component", "download"),
	}
}

// SetUpdateCallback sets the callback function for job updates
func (s *Service) SetUpdateCallback(callback func(*model.DownloadJob)) {
	s.onUpdate = callback
}

// DownloadVideo downloads the video at resolution. A progressive stream is
// preferred; otherwise the adaptive video stream is merged with the best audio
// stream. There is no fallback to another resolution.
func (s *Service) DownloadVideo(ctx context.Context, session *stream.Session, dir, resolution, format string) (*model.DownloadJob, error) {
	if !session.Ready() {
		return nil, model.ErrNotFetched
	}
	job := s.newJob(session, dir, resolution, format, model.DownloadKindVideo)
	streams := session.Streams()

	if progressive, ok := lo.Find(streams, func(d model.StreamDescriptor) bool {
		return d.Kind == model.StreamKindProgressive && d.Resolution == resolution
	}); ok {
		return job, s.finish(job, s.downloadSingle(ctx, session, job, progressive))
	}

	video, ok := lo.Find(streams, func(d model.StreamDescriptor) bool {
		return d.Kind == model.StreamKindVideo && d.Resolution == resolution
	})
	audio, hasAudio := bestAudio(streams)
	if !ok || !hasAudio {
		return job, s.finish(job, fmt.Errorf("%s: %w", resolution, model.ErrNoStreamFound))
	}
	return job, s.finish(job, s.downloadAdaptive(ctx, session, job, video, audio))
}

// DownloadAudio downloads the audio-only stream at bitrate and converts it to format
func (s *Service) DownloadAudio(ctx context.Context, session *stream.Session, dir, bitrate, format string) (*model.DownloadJob, error) {
	if !session.Ready() {
		return nil, model.ErrNotFetched
	}
	job := s.newJob(session, dir, bitrate, format, model.DownloadKindAudio)

	audio, ok := lo.Find(session.Streams(), func(d model.StreamDescriptor) bool {
		return d.Kind == model.StreamKindAudio && d.Bitrate == bitrate
	})
	if !ok {
		return job, s.finish(job, fmt.Errorf("%s: %w", bitrate, model.ErrNoStreamFound))
	}

	temp := platform.ArtifactPath(dir, job.Title, platform.TempSuffix, audio.Container)
	if err := s.fetchStream(ctx, session, job, audio, temp); err != nil {
		return job, s.finish(job, err)
	}

	output, err := s.outputPath(job)
	if err != nil {
		_ = platform.RemoveIfExists(s.fs, temp)
		return job, s.finish(job, err)
	}
	s.setStatus(job, model.JobStatusConverting)
	return job, s.finish(job, s.processor.Convert(ctx, temp, output))
}

// downloadSingle handles a progressive stream: rename when the container already matches, convert otherwise
func (s *Service) downloadSingle(ctx context.Context, session *stream.Session, job *model.DownloadJob, desc model.StreamDescriptor) error {
	temp := platform.ArtifactPath(job.Dir, job.Title, platform.TempSuffix, desc.Container)
	if err := s.fetchStream(ctx, session, job, desc, temp); err != nil {
		return err
	}

	output, err := s.outputPath(job)
	if err != nil {
		_ = platform.RemoveIfExists(s.fs, temp)
		return err
	}

	if desc.Container == job.Format {
		if err := s.fs.Rename(temp, output); err != nil {
			_ = platform.RemoveIfExists(s.fs, temp)
			return fmt.Errorf("failed to move %s to %s: %w", temp, output, err)
		}
		return nil
	}

	s.setStatus(job, model.JobStatusConverting)
	return s.processor.Convert(ctx, temp, output)
}

// downloadAdaptive fetches separate video and audio streams and merges them
func (s *Service) downloadAdaptive(ctx context.Context, session *stream.Session, job *model.DownloadJob, video, audio model.StreamDescriptor) error {
	videoPath := platform.ArtifactPath(job.Dir, job.Title, platform.VideoSuffix, video.Container)
	audioPath := platform.ArtifactPath(job.Dir, job.Title, platform.AudioSuffix, audio.Container)

	if err := s.fetchStream(ctx, session, job, video, videoPath); err != nil {
		return err
	}
	if err := s.fetchStream(ctx, session, job, audio, audioPath); err != nil {
		_ = platform.RemoveIfExists(s.fs, videoPath)
		return err
	}

	output, err := s.outputPath(job)
	if err != nil {
		_ = platform.RemoveIfExists(s.fs, videoPath)
		_ = platform.RemoveIfExists(s.fs, audioPath)
		return err
	}
	s.setStatus(job, model.JobStatusConverting)
	return s.processor.Merge(ctx, videoPath, audioPath, output)
}

// fetchStream writes one stream to path; a partial file is removed on failure
func (s *Service) fetchStream(ctx context.Context, session *stream.Session, job *model.DownloadJob, desc model.StreamDescriptor, path string) error {
	s.log.WithFields(logrus.Fields{"job": job.ID, "itag": desc.Itag, "path": path}).Info("Downloading stream")

	if err := s.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	file, err := s.fs.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	err = session.Download(ctx, desc, file, func(d model.StreamDescriptor, chunk []byte, bytesRemaining int64) {
		s.updateJobProgress(job, d.Filesize, bytesRemaining)
	})
	if closeErr := file.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("failed to write %s: %w", path, closeErr)
	}
	if err != nil {
		_ = platform.RemoveIfExists(s.fs, path)
		return err
	}
	return nil
}

// outputPath picks a free <title>.<format> name right before it is written
func (s *Service) outputPath(job *model.DownloadJob) (string, error) {
	output, err := platform.UniquePath(s.fs, platform.ArtifactPath(job.Dir, job.Title, "", job.Format))
	if err != nil {
		return "", err
	}
	s.jobsMutex.Lock()
	job.OutputPath = output
	s.jobsMutex.Unlock()
	return output, nil
}

// updateJobProgress updates job progress from the bytes still to be received
func (s *Service) updateJobProgress(job *model.DownloadJob, filesize, bytesRemaining int64) {
	if filesize <= 0 {
		return
	}
	s.jobsMutex.Lock()
	progress := float64(filesize-bytesRemaining) / float64(filesize)
	job.Progress = min(max(progress, 0), 1)
	job.Percent = int(job.Progress * 100)
	s.jobsMutex.Unlock()

	s.notifyUpdate(job)
}

func (s *Service) setStatus(job *model.DownloadJob, status model.JobStatus) {
	s.jobsMutex.Lock()
	job.Status = status
	s.jobsMutex.Unlock()
	s.notifyUpdate(job)
}

// finish moves the job to its terminal state and returns err unchanged
func (s *Service) finish(job *model.DownloadJob, err error) error {
	s.jobsMutex.Lock()
	if err != nil {
		job.Status = model.JobStatusError
		job.LastError = err.Error()
	} else {
		job.Status = model.JobStatusCompleted
		job.Progress = 1.0
		job.Percent = 100
	}
	job.FinishedAt = time.Now()
	s.jobsMutex.Unlock()

	entry := s.log.WithFields(logrus.Fields{"job": job.ID, "output": job.OutputPath})
	if err != nil {
		entry.WithError(err).Error("Download failed")
	} else {
		entry.Info("Download completed")
	}
	s.notifyUpdate(job)
	return err
}

func (s *Service) newJob(session *stream.Session, dir, quality, format string, kind model.DownloadKind) *model.DownloadJob {
	job := &model.DownloadJob{
		ID:        generateJobID(),
		Dir:       dir,
		Quality:   quality,
		Format:    format,
		Kind:      kind,
		Title:     session.Info.Title,
		Status:    model.JobStatusDownloading,
		StartedAt: time.Now(),
	}
	s.log.WithFields(logrus.Fields{"job": job.ID, "kind": kind, "quality": quality, "format": format}).Info("Starting download")
	s.notifyUpdate(job)
	return job
}

// notifyUpdate passes a snapshot of the job to the update callback if set
func (s *Service) notifyUpdate(job *model.DownloadJob) {
	if s.onUpdate == nil {
		return
	}
	s.jobsMutex.Lock()
	snapshot := *job
	s.jobsMutex.Unlock()
	s.onUpdate(&snapshot)
}

// bestAudio returns the audio-only stream with the highest bitrate
func bestAudio(streams []model.StreamDescriptor) (model.StreamDescriptor, bool) {
	audio := lo.Filter(streams, func(d model.StreamDescriptor, _ int) bool {
		return d.Kind == model.StreamKindAudio
	})
	if len(audio) == 0 {
		return model.StreamDescriptor{}, false
	}
	return lo.MaxBy(audio, func(a, b model.StreamDescriptor) bool {
		return model.ParseQuality(a.Bitrate) > model.ParseQuality(b.Bitrate)
	}), true
}

// generateJobID generates a unique job ID using UUID v7
func generateJobID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(JobIDPrefix+"%d", time.Now().UnixNano())
	}
	return JobIDPrefix + id.String()
}
