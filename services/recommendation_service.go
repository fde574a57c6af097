package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"purposee_server/matching"
	"purposee_server/models"
)

// RecommendationService is the shell around the ranking engine: it gathers
// every engine input fresh (viewer, pool, filters, interaction sets), runs
// matching.RankCandidates, and persists the resulting order and cursor in the
// deck store.
type RecommendationService struct {
	Profiles     *ProfileService
	Interactions *InteractionService
	Filters      *FilterService
	Decks        *DeckStore
}

// Deck is a ranked list of candidates plus the viewer's current position.
type Deck struct {
	Candidates []matching.RankedCandidate `json:"candidates"`
	Cursor     int                        `json:"cursor"`
}

// GetDeck ranks the viewer's candidate pool and saves the new order. Always
// recomputes; the persisted deck only serves the cursor for NextCandidate.
func (rs *RecommendationService) GetDeck(ctx context.Context, viewerID string) (*Deck, error) {
	ranked, err := rs.rank(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(ranked))
	for i, rc := range ranked {
		ids[i] = rc.Profile.UserID
	}
	if err := rs.Decks.Save(ctx, viewerID, ids); err != nil {
		// Losing the cache only costs a re-rank on the next call.
		log.Printf("⚠️ Failed to persist deck for %s: %v", viewerID, err)
	}

	return &Deck{Candidates: ranked, Cursor: 0}, nil
}

// NextCandidate returns the candidate at the viewer's cursor and advances it.
// A nil candidate with no error means the deck is exhausted, which the client
// renders as the end-of-deck state.
func (rs *RecommendationService) NextCandidate(ctx context.Context, viewerID string) (*matching.RankedCandidate, error) {
	ids, cursor, err := rs.Decks.Load(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	// No stored deck: recompute from fresh inputs, cursor back at the top.
	if len(ids) == 0 {
		deck, err := rs.GetDeck(ctx, viewerID)
		if err != nil {
			return nil, err
		}
		if len(deck.Candidates) == 0 {
			return nil, nil
		}
		if _, err := rs.Decks.Advance(ctx, viewerID); err != nil {
			log.Printf("⚠️ Failed to advance deck cursor for %s: %v", viewerID, err)
		}
		return &deck.Candidates[0], nil
	}

	if cursor >= len(ids) {
		return nil, nil
	}

	candidate, err := rs.candidateAt(ctx, viewerID, ids[cursor])
	if err != nil {
		return nil, err
	}
	if _, err := rs.Decks.Advance(ctx, viewerID); err != nil {
		log.Printf("⚠️ Failed to advance deck cursor for %s: %v", viewerID, err)
	}
	return candidate, nil
}

// rank loads every engine input and runs the pure core.
func (rs *RecommendationService) rank(ctx context.Context, viewerID string) ([]matching.RankedCandidate, error) {
	viewer, err := rs.Profiles.GetProfile(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load viewer %s: %w", viewerID, err)
	}

	pool, err := rs.Profiles.GetCandidatePool(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	filters, err := rs.Filters.GetFilterState(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	liked, err := rs.Interactions.GetLikedIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	passed, err := rs.Interactions.GetPassedIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	likers, err := rs.Interactions.GetLikerIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	inter := matching.Interactions{
		LikedByViewer:  liked,
		PassedByViewer: passed,
		LikedViewer:    likers,
	}
	return matching.RankCandidates(*viewer, pool, *filters, inter, time.Now()), nil
}

// candidateAt re-scores a single stored candidate so the response carries a
// current reason and score even when served from the persisted order.
func (rs *RecommendationService) candidateAt(ctx context.Context, viewerID, candidateID string) (*matching.RankedCandidate, error) {
	viewer, err := rs.Profiles.GetProfile(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load viewer %s: %w", viewerID, err)
	}
	candidate, err := rs.Profiles.GetProfile(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate %s: %w", candidateID, err)
	}

	filters, err := rs.Filters.GetFilterState(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	likers, err := rs.Interactions.GetLikerIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	ranked := matching.RankCandidates(*viewer, []models.Profile{*candidate}, *filters,
		matching.Interactions{LikedViewer: likers}, time.Now())
	if len(ranked) == 0 {
		// The stored entry went stale (candidate paused, moved, was liked).
		// Treat as exhausted at this position; the next GetDeck heals it.
		return nil, nil
	}
	return &ranked[0], nil
}
