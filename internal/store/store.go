// Package store combines the GitHub storage collaborator with the
// report document model: listing, reading, writing, and lifecycle
// transitions for reports in one repository.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/grubhold/repo-reports-mcp/internal/github"
	"github.com/grubhold/repo-reports-mcp/internal/report"
)

// ErrNotFound is returned when a requested report's file does not
// exist. It is the only error the parsing pipeline ever surfaces;
// everything else degrades silently.
var ErrNotFound = errors.New("report not found")

// blobFetchLimit bounds concurrent blob fetches during a listing.
const blobFetchLimit = 8

// Store reads and writes reports in a single GitHub repository.
type Store struct {
	gh         *github.Client
	rootPath   string
	statusPath string
	logger     *slog.Logger
}

// New creates a store over the given client. rootPath is the reports
// directory inside the repository, statusPath the repository path of
// the lifecycle-status file.
func New(gh *github.Client, rootPath, statusPath string, logger *slog.Logger) *Store {
	return &Store{
		gh:         gh,
		rootPath:   rootPath,
		statusPath: statusPath,
		logger:     logger,
	}
}

// List returns the summary projection of every report under the root
// path, newest first. The markdown tree and the status file are
// fetched concurrently, then blob contents fan out with a bounded
// worker count. A file whose content cannot be fetched is excluded
// from the result instead of failing the listing.
func (s *Store) List(ctx context.Context) ([]report.Summary, error) {
	var (
		entries  []github.TreeEntry
		statuses map[string]report.LifecycleStatus
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entries, err = s.gh.ListMarkdownFiles(gctx, s.rootPath)
		return err
	})
	g.Go(func() error {
		statuses = s.fetchStatuses(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	summaries := make([]report.Summary, len(entries))
	fetched := make([]bool, len(entries))

	fg, fctx := errgroup.WithContext(ctx)
	fg.SetLimit(blobFetchLimit)
	for i, entry := range entries {
		fg.Go(func() error {
			content, err := s.gh.GetBlobContent(fctx, entry.SHA)
			if err != nil {
				s.logger.Warn("skipping unreadable report", "path", entry.Path, "error", err)
				return nil
			}
			summaries[i] = report.ParseSummary(content, entry.Path, s.rootPath, statuses)
			fetched[i] = true
			return nil
		})
	}
	_ = fg.Wait()

	out := make([]report.Summary, 0, len(entries))
	for i := range summaries {
		if fetched[i] {
			out = append(out, summaries[i])
		}
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].UpdatedAt > out[b].UpdatedAt
	})
	return out, nil
}

// Get returns the full report for one id, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (*report.Report, error) {
	filePath := s.reportPath(id)

	var (
		file     *github.FileContent
		statuses map[string]report.LifecycleStatus
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		file, err = s.gh.GetFileContent(gctx, filePath)
		return err
	})
	g.Go(func() error {
		statuses = s.fetchStatuses(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("get report %s: %w", id, err)
	}
	if file == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	r := report.ParseReport(file.Content, filePath, s.rootPath, statuses)
	return &r, nil
}

// Save creates or updates a report's raw markdown content. Returns
// "created" or "updated" depending on whether the file existed.
func (s *Store) Save(ctx context.Context, id, content, message string) (string, error) {
	filePath := s.reportPath(id)

	existing, err := s.gh.GetFileContent(ctx, filePath)
	if err != nil {
		return "", fmt.Errorf("save report %s: %w", id, err)
	}

	action := "created"
	previousSHA := ""
	if existing != nil {
		action = "updated"
		previousSHA = existing.SHA
	}
	if message == "" {
		message = fmt.Sprintf("Update report %s", id)
	}

	if err := s.gh.PutFileContent(ctx, filePath, content, message, previousSHA); err != nil {
		return "", fmt.Errorf("save report %s: %w", id, err)
	}
	return action, nil
}

// Delete removes a report's file, or returns ErrNotFound.
func (s *Store) Delete(ctx context.Context, id, message string) error {
	filePath := s.reportPath(id)

	existing, err := s.gh.GetFileContent(ctx, filePath)
	if err != nil {
		return fmt.Errorf("delete report %s: %w", id, err)
	}
	if existing == nil {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if message == "" {
		message = fmt.Sprintf("Delete report %s", id)
	}

	if err := s.gh.DeleteFile(ctx, filePath, message, existing.SHA); err != nil {
		return fmt.Errorf("delete report %s: %w", id, err)
	}
	return nil
}

// SetStatus applies a lifecycle transition and writes the pruned
// status map back. A transition to unread removes the entry.
func (s *Store) SetStatus(ctx context.Context, id string, status report.LifecycleStatus) error {
	file, err := s.gh.GetFileContent(ctx, s.statusPath)
	if err != nil {
		return fmt.Errorf("set status for %s: %w", id, err)
	}

	statuses := make(map[string]report.LifecycleStatus)
	previousSHA := ""
	if file != nil {
		statuses = report.ParseLifecycleStatuses(file.Content)
		previousSHA = file.SHA
	}

	report.SetLifecycleStatus(statuses, id, status)

	data, err := report.MarshalLifecycleStatuses(statuses)
	if err != nil {
		return fmt.Errorf("set status for %s: %w", id, err)
	}

	message := fmt.Sprintf("Mark report %s as %s", id, status)
	if err := s.gh.PutFileContent(ctx, s.statusPath, string(data), message, previousSHA); err != nil {
		return fmt.Errorf("set status for %s: %w", id, err)
	}
	return nil
}

// fetchStatuses loads the lifecycle map, degrading to empty on any
// failure: a broken status file must never break report reads.
func (s *Store) fetchStatuses(ctx context.Context) map[string]report.LifecycleStatus {
	file, err := s.gh.GetFileContent(ctx, s.statusPath)
	if err != nil {
		s.logger.Warn("failed to fetch status file", "path", s.statusPath, "error", err)
		return map[string]report.LifecycleStatus{}
	}
	if file == nil {
		return map[string]report.LifecycleStatus{}
	}
	return report.ParseLifecycleStatuses(file.Content)
}

func (s *Store) reportPath(id string) string {
	return path.Join(s.rootPath, id+".md")
}
