package services

import (
	"errors"
	"sync"
	"time"

	"quizapp/backend/apperr"
	"quizapp/backend/models"

	"gorm.io/gorm"
)

// StreakService maintains per-user consecutive-day counters.
//
// Calendar days are taken in UTC: a quiz finished at 23:59 UTC and another
// at 00:01 UTC the next day count as two different days regardless of the
// client's locale.
type StreakService struct {
	DB *gorm.DB

	// locks serializes Update per userID so two simultaneous completions
	// cannot both read the pre-update record. The user_id column also
	// carries a unique index, so duplicate creation is impossible even
	// across processes.
	locks sync.Map // userID -> *sync.Mutex
}

func NewStreakService(db *gorm.DB) *StreakService {
	return &StreakService{DB: db}
}

func (s *StreakService) userLock(userID string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(userID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// toDay truncates a time to its UTC calendar date.
func toDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Update records one practice completion at the given instant and returns
// the updated record. Repeated calls on the same calendar day are
// idempotent: the counters do not change after the first call of the day.
func (s *StreakService) Update(userID string, now time.Time) (*models.Streak, error) {
	if userID == "" {
		return nil, apperr.Validation("userId required")
	}

	mu := s.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	today := toDay(now)

	var streak models.Streak
	err := s.DB.Where("user_id = ?", userID).First(&streak).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		streak = models.Streak{
			UserID:        userID,
			CurrentStreak: 1,
			BestStreak:    1,
			LastQuizDate:  &today,
		}
		if err := s.DB.Create(&streak).Error; err != nil {
			return nil, apperr.Storage("create streak", err)
		}
		return &streak, nil
	case err != nil:
		return nil, apperr.Storage("load streak", err)
	}

	switch {
	case streak.LastQuizDate == nil:
		streak.CurrentStreak = 1
	case toDay(*streak.LastQuizDate).Equal(today):
		// already counted today
	case toDay(*streak.LastQuizDate).Equal(today.AddDate(0, 0, -1)):
		streak.CurrentStreak++
	default:
		// a gap of two or more days, or a last date in the future from
		// clock skew, both restart the run
		streak.CurrentStreak = 1
	}

	if streak.CurrentStreak > streak.BestStreak {
		streak.BestStreak = streak.CurrentStreak
	}
	streak.LastQuizDate = &today

	if err := s.DB.Save(&streak).Error; err != nil {
		return nil, apperr.Storage("save streak", err)
	}

	return &streak, nil
}

// Get returns the stored counters for a user, or zeros when the user has
// no streak record. It never creates one.
func (s *StreakService) Get(userID string) (current, best int, err error) {
	if userID == "" {
		return 0, 0, nil
	}

	var streak models.Streak
	dbErr := s.DB.Where("user_id = ?", userID).First(&streak).Error
	if errors.Is(dbErr, gorm.ErrRecordNotFound) {
		return 0, 0, nil
	}
	if dbErr != nil {
		return 0, 0, apperr.Storage("load streak", dbErr)
	}

	return streak.CurrentStreak, streak.BestStreak, nil
}
