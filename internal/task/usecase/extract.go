package usecase

import (
	"context"
	"slices"
	"strings"
	"time"

	"calendar-task-scheduler/internal/model"
	"calendar-task-scheduler/internal/task"
	"calendar-task-scheduler/pkg/extractor"
	"calendar-task-scheduler/pkg/metrics"
)

// Extract runs the extraction pipeline over the input text.
// Empty input is not an error: it yields an empty task list.
func (uc *implUseCase) Extract(ctx context.Context, sc model.Scope, input task.ExtractInput) (task.ExtractOutput, error) {
	tasks, err := uc.extract(ctx, sc, input.Text)
	if err != nil {
		return task.ExtractOutput{}, err
	}
	return task.ExtractOutput{Tasks: tasks, Count: len(tasks)}, nil
}

func (uc *implUseCase) extract(ctx context.Context, sc model.Scope, text string) ([]extractor.Task, error) {
	if strings.TrimSpace(text) == "" {
		return []extractor.Task{}, nil
	}
	if uc.cfg.MaxInputBytes > 0 && len(text) > uc.cfg.MaxInputBytes {
		return nil, task.ErrInputTooLarge
	}

	now := uc.extractor.Now()
	key := cacheKey(now, text)

	if cached, ok := uc.cache.Get(key); ok {
		metrics.ExtractRequests.WithLabelValues(string(sc.Source), "hit").Inc()
		uc.l.Debugf(ctx, "Extract: cache hit source=%s tasks=%d", sc.Source, len(cached))
		return slices.Clone(cached), nil
	}
	metrics.ExtractRequests.WithLabelValues(string(sc.Source), "miss").Inc()

	started := time.Now()
	tasks := uc.extractor.ExtractAt(ctx, text, now)
	metrics.ExtractDuration.Observe(time.Since(started).Seconds())

	for _, t := range tasks {
		metrics.TasksExtracted.WithLabelValues(t.Category, t.Priority).Inc()
	}
	uc.cache.Add(key, tasks)

	uc.l.Infof(ctx, "Extract: source=%s input_length=%d tasks=%d", sc.Source, len(text), len(tasks))
	return slices.Clone(tasks), nil
}
