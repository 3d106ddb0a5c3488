package policy

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-OvenBooking/internal/domain"
)

// ErrNoPolicyFile возвращается при Reload у источника без файла
var ErrNoPolicyFile = errors.New("policy: source has no policy file")

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Source источник правил бронирования
// Правила из config.toml могут быть переопределены файлом, который перечитывается при изменении.
// Некорректный файл не применяется, остаются последние корректные правила.
type Source struct {
	base     domain.ValidationPolicy
	path     string
	debounce time.Duration
	logger   Logger

	mu       sync.RWMutex
	current  domain.ValidationPolicy
	loadedAt time.Time
}

// fileOverrides содержимое файла правил, отсутствующие ключи не меняют базовые значения
type fileOverrides struct {
	MaxActiveReservations   *int    `toml:"max_active_reservations"`
	MaxSpanDays             *int    `toml:"max_span_days"`
	MinLeadMinutes          *int    `toml:"min_lead_minutes"`
	CancellationLeadMinutes *int    `toml:"cancellation_lead_minutes"`
	Timezone                *string `toml:"timezone"`
}

// NewStaticSource создает источник с неизменяемыми правилами
func NewStaticSource(policy domain.ValidationPolicy) *Source {
	return &Source{
		base:     policy,
		current:  policy,
		loadedAt: time.Now(),
	}
}

// NewFileSource создает источник с переопределением из файла path
// Файл читается сразу, ошибка чтения при старте возвращается вызывающему
func NewFileSource(base domain.ValidationPolicy, path string, debounce time.Duration, logger Logger) (*Source, error) {
	s := &Source{
		base:     base,
		current:  base,
		path:     path,
		debounce: debounce,
		logger:   logger,
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Current возвращает копию действующих правил в режиме create
func (s *Source) Current() domain.ValidationPolicy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// LoadedAt время последнего успешного применения правил
func (s *Source) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// Path путь к файлу правил, пустой для статического источника
func (s *Source) Path() string {
	return s.path
}

// Reload перечитывает файл правил
func (s *Source) Reload() error {
	if s.path == "" {
		return ErrNoPolicyFile
	}

	policy, err := loadFile(s.base, s.path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.current = policy
	s.loadedAt = time.Now()
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Info("Policy: loaded %s (quota=%d, span=%dd, lead=%s, cancel_lead=%s, tz=%s)",
			s.path, policy.MaxActiveReservationsPerRequester, policy.MaxReservationSpanDays,
			policy.MinLeadTime, policy.CancellationLeadTime, policy.Zone())
	}
	return nil
}

func loadFile(base domain.ValidationPolicy, path string) (domain.ValidationPolicy, error) {
	var overrides fileOverrides
	meta, err := toml.DecodeFile(path, &overrides)
	if err != nil {
		return domain.ValidationPolicy{}, fmt.Errorf("policy: failed to decode %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return domain.ValidationPolicy{}, fmt.Errorf("policy: unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	return overrides.apply(base)
}

func (o fileOverrides) apply(base domain.ValidationPolicy) (domain.ValidationPolicy, error) {
	p := base
	if o.MaxActiveReservations != nil {
		p.MaxActiveReservationsPerRequester = *o.MaxActiveReservations
	}
	if o.MaxSpanDays != nil {
		p.MaxReservationSpanDays = *o.MaxSpanDays
	}
	if o.MinLeadMinutes != nil {
		p.MinLeadTime = time.Duration(*o.MinLeadMinutes) * time.Minute
	}
	if o.CancellationLeadMinutes != nil {
		p.CancellationLeadTime = time.Duration(*o.CancellationLeadMinutes) * time.Minute
	}
	if o.Timezone != nil {
		loc, err := time.LoadLocation(*o.Timezone)
		if err != nil {
			return domain.ValidationPolicy{}, fmt.Errorf("policy: unknown timezone %q: %w", *o.Timezone, err)
		}
		p.Location = loc
	}
	p.Mode = domain.ModeCreate

	if err := p.Validate(); err != nil {
		return domain.ValidationPolicy{}, fmt.Errorf("policy: %w", err)
	}
	return p, nil
}
