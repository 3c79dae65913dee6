package storage

import (
	"time"

	"github.com/halewood/trial-by-combat/internal/game"
	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateMatch(m *game.Match) error {
	return r.db.Create(m).Error
}

func (r *sqliteRepository) GetMatchByID(id uint) (*game.Match, error) {
	var m game.Match
	if err := r.db.Preload("Fighters").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *sqliteRepository) FindMatchByJoinCode(code string) (*game.Match, error) {
	var m game.Match
	err := r.db.Preload("Fighters").Where("join_code = ?", code).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *sqliteRepository) GetOpenMatches() ([]game.Match, error) {
	var matches []game.Match
	fiveMinutesAgo := time.Now().Add(-5 * time.Minute)
	err := r.db.Preload("Fighters").
		Where("mode = ? AND status = ? AND created_at > ?",
			game.ModeVsPlayer, game.StatusWaitingForPlayers, fiveMinutesAgo).
		Order("created_at desc").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *sqliteRepository) UpdateMatch(m *game.Match) error {
	return r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(m).Error
}

func (r *sqliteRepository) UpsertProfile(playerUUID, name string) error {
	var p game.Profile
	if err := r.db.Where("player_uuid = ?", playerUUID).First(&p).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return err
		}
		p = game.Profile{PlayerUUID: playerUUID}
	}
	p.PlayerName = name
	return r.db.Save(&p).Error
}

func (r *sqliteRepository) GetProfileByUUID(playerUUID string) (*game.Profile, error) {
	var p game.Profile
	if err := r.db.Where("player_uuid = ?", playerUUID).First(&p).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return &game.Profile{PlayerUUID: playerUUID}, nil
		}
		return nil, err
	}
	return &p, nil
}

// UpdateStatsOnMatchEnd records one finished match for every human
// fighter and credits the winner. Gauntlet wins also count toward the
// clear tally. Matches already counted are skipped by the caller via
// the StatsCounted flag.
func (r *sqliteRepository) UpdateStatsOnMatchEnd(m *game.Match) error {
	bump := func(f *game.Fighter, won bool) error {
		var p game.Profile
		if err := r.db.Where("player_uuid = ?", f.PlayerUUID).First(&p).Error; err != nil {
			if err != gorm.ErrRecordNotFound {
				return err
			}
			p = game.Profile{PlayerUUID: f.PlayerUUID, PlayerName: f.Name}
		}
		p.PlayerName = f.Name
		p.GamesPlayed++
		if won {
			p.Wins++
			if m.Mode == game.ModeGauntlet {
				p.GauntletClears++
			}
		}
		return r.db.Save(&p).Error
	}
	for i := range m.Fighters {
		f := &m.Fighters[i]
		if f.IsComputer || f.PlayerUUID == "" {
			continue
		}
		if err := bump(f, m.Winner != "" && m.Winner == f.Name); err != nil {
			return err
		}
	}
	return nil
}

// GetTopPlayers returns the top N profiles ordered by wins, ties broken
// by games played.
func (r *sqliteRepository) GetTopPlayers(limit int) ([]game.Profile, error) {
	if limit <= 0 {
		limit = 10
	}
	var profiles []game.Profile
	err := r.db.Model(&game.Profile{}).
		Order("wins DESC").
		Order("games_played DESC").
		Limit(limit).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *sqliteRepository) FindTimedOutMatches(now time.Time) ([]game.Match, error) {
	var matches []game.Match
	err := r.db.Preload("Fighters").
		Where("status = ? AND phase = ? AND action_deadline > ? AND action_deadline <= ?",
			game.StatusInProgress, game.PhaseSelecting, time.Time{}, now).
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}
