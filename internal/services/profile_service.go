package services

import (
	"context"
	"fmt"
	"time"

	"github.com/epeers/holdings/internal/cache"
	"github.com/epeers/holdings/internal/models"
	"github.com/epeers/holdings/internal/repository"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// ProfileService loads the company list and stock profile files and serves
// the merged holdings table, its sector breakdown and rankings.
type ProfileService struct {
	memCache    *cache.MemoryCache
	companyPath string
	profilePath string
	policy      MergePolicy
	group       singleflight.Group
}

// NewProfileService creates a new ProfileService
func NewProfileService(memCache *cache.MemoryCache, companyPath, profilePath string, policy MergePolicy) *ProfileService {
	return &ProfileService{
		memCache:    memCache,
		companyPath: companyPath,
		profilePath: profilePath,
		policy:      policy,
	}
}

// CompanyList returns the company list table (footer row dropped)
func (s *ProfileService) CompanyList(ctx context.Context) (*models.CompanyList, error) {
	identity, err := repository.SourceIdentity(s.companyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat company list: %w", err)
	}
	if list, ok := s.memCache.GetCompanyList(s.companyPath, identity); ok {
		return list, nil
	}

	v, err, _ := s.group.Do("company|"+identity, func() (interface{}, error) {
		list, err := repository.LoadCompanyList(s.companyPath)
		if err != nil {
			return nil, err
		}
		s.memCache.SetCompanyList(s.companyPath, identity, list)
		log.WithFields(log.Fields{"path": s.companyPath, "companies": list.Len()}).Info("loaded company list")
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.CompanyList), nil
}

// StockProfiles returns the raw stock profile table
func (s *ProfileService) StockProfiles(ctx context.Context) (*models.StockProfiles, error) {
	identity, err := repository.SourceIdentity(s.profilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat stock profile: %w", err)
	}
	if profiles, ok := s.memCache.GetStockProfiles(s.profilePath, identity); ok {
		return profiles, nil
	}

	v, err, _ := s.group.Do("profile|"+identity, func() (interface{}, error) {
		profiles, err := repository.LoadStockProfiles(s.profilePath)
		if err != nil {
			return nil, err
		}
		s.memCache.SetStockProfiles(s.profilePath, identity, profiles)
		log.WithFields(log.Fields{"path": s.profilePath, "symbols": profiles.Len()}).Info("loaded stock profiles")
		return profiles, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.StockProfiles), nil
}

// Merged returns the merged holdings table.
// The merge runs per call so that dropped symbols are reported to the
// caller's warning collector; only the parsed source tables are cached.
func (s *ProfileService) Merged(ctx context.Context) (*models.MergedProfiles, error) {
	defer TrackTime("ProfileService.Merged", time.Now())

	companies, err := s.CompanyList(ctx)
	if err != nil {
		return nil, err
	}
	profiles, err := s.StockProfiles(ctx)
	if err != nil {
		return nil, err
	}

	merged, err := MergeProfiles(ctx, companies, profiles, s.policy)
	if err != nil {
		return nil, err
	}

	for _, sym := range UnknownSymbols(merged) {
		AddWarningf(ctx, models.WarnUnknownTicker, "symbol %q is not part of the tracked ticker universe", sym)
	}
	return merged, nil
}

// Allocation groups the merged holdings by category ("Sector" or "Industry")
// and orders the groups ("none", "count" or "name").
func (s *ProfileService) Allocation(ctx context.Context, category, order string) ([]models.SectorGroup, error) {
	// validate before touching the files
	if _, err := ResolveCategory(category); err != nil {
		return nil, err
	}
	if _, err := SortGroups(nil, order); err != nil {
		return nil, err
	}

	merged, err := s.Merged(ctx)
	if err != nil {
		return nil, err
	}
	groups, err := AggregateByCategory(merged, category)
	if err != nil {
		return nil, err
	}
	return SortGroups(groups, order)
}

// TopHoldings returns the n largest holdings by a numeric field
func (s *ProfileService) TopHoldings(ctx context.Context, field string, n int) ([]models.MergedProfile, error) {
	if _, err := ResolveRankField(field); err != nil {
		return nil, err
	}

	merged, err := s.Merged(ctx)
	if err != nil {
		return nil, err
	}
	return TopN(merged, field, n)
}
