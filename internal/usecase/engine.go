package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/corebank/ledgerengine/internal/domain"
)

// Engine is the entry point for callers of the posting engine.
type Engine struct {
	postings *PostingUseCase
	trackers *TrackerUseCase
	closes   *DayCloseUseCase
}

// NewEngine creates a new Engine.
func NewEngine(postings *PostingUseCase, trackers *TrackerUseCase, closes *DayCloseUseCase) *Engine {
	return &Engine{postings: postings, trackers: trackers, closes: closes}
}

// ResolveAndPost resolves an operation into a balanced entry set and posts
// it under a transaction tracker.
func (e *Engine) ResolveAndPost(ctx context.Context, cmd domain.PostingCommand) (*PostingResult, *domain.TransactionTracker, error) {
	return e.trackers.Submit(ctx, cmd)
}

// Preview resolves an operation without posting it.
func (e *Engine) Preview(ctx context.Context, cmd domain.PostingCommand) ([]domain.AccountingEntry, error) {
	return e.postings.Preview(ctx, cmd)
}

// Reverse posts the offsetting entry set of reference and moves its
// tracker, if any, to reversed.
func (e *Engine) Reverse(ctx context.Context, reference string) (*PostingResult, error) {
	result, err := e.postings.Reverse(ctx, reference)
	if err != nil {
		return nil, err
	}
	if err := e.trackers.MarkReversed(ctx, reference); err != nil && !errors.Is(err, domain.ErrTrackerNotFound) {
		return result, err
	}
	return result, nil
}

// GetPosting returns a posted entry set.
func (e *Engine) GetPosting(ctx context.Context, reference string) (*PostingResult, error) {
	return e.postings.GetPosting(ctx, reference)
}

// CloseDay closes a branch business day.
func (e *Engine) CloseDay(ctx context.Context, branchID string, date time.Time) (*domain.CloseOfDayData, error) {
	return e.closes.CloseDay(ctx, branchID, date)
}

// GetDayClose returns the stored close of a branch day.
func (e *Engine) GetDayClose(ctx context.Context, branchID string, date time.Time) (*domain.CloseOfDayData, error) {
	return e.closes.GetDayClose(ctx, branchID, date)
}

// GetTrialBalance returns branch balances as of a date.
func (e *Engine) GetTrialBalance(ctx context.Context, branchID string, asOf time.Time) (*domain.TrialBalanceFile, error) {
	return e.closes.GetTrialBalance(ctx, branchID, asOf)
}

// Trackers exposes tracker administration.
func (e *Engine) Trackers() *TrackerUseCase { return e.trackers }
