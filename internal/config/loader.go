package config

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Loader layers an optional config file over the environment defaults
// and supports hot reloading: subscribers are notified whenever the
// file changes on disk and still validates.
type Loader struct {
	viper      *viper.Viper
	configFile string
	logger     *log.Logger

	mu          sync.RWMutex
	current     Config
	subscribers []func(Config)
}

// Load reads configFile over base. An empty configFile yields a Loader
// that only carries base; Watch is then a no-op.
func Load(configFile string, base Config, logger *log.Logger) (*Loader, error) {
	l := &Loader{configFile: configFile, logger: logger, current: base}
	if configFile == "" {
		if err := base.Validate(); err != nil {
			return nil, err
		}
		return l, nil
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	ext := filepath.Ext(configFile)
	v.SetConfigType(strings.TrimPrefix(ext, "."))
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := base
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	l.viper = v
	l.current = cfg
	return l, nil
}

// Config returns the current configuration snapshot.
func (l *Loader) Config() Config {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

// Subscribe registers fn to run after every successful reload.
func (l *Loader) Subscribe(fn func(Config)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.subscribers = append(l.subscribers, fn)
}

// Watch starts watching the config file for changes. A rewrite that
// fails to parse or validate is ignored and the previous configuration
// stays in effect.
func (l *Loader) Watch() {
	if l.viper == nil {
		return
	}
	l.viper.OnConfigChange(func(e fsnotify.Event) {
		if e.Op&(fsnotify.Write|fsnotify.Create) == 0 {
			return
		}
		l.reload()
	})
	l.viper.WatchConfig()
}

func (l *Loader) reload() {
	cfg := l.Config()
	if err := l.viper.Unmarshal(&cfg); err != nil {
		l.logger.Printf("config reload: unmarshal failed, keeping previous: %v", err)
		return
	}
	if err := cfg.Validate(); err != nil {
		l.logger.Printf("config reload: invalid, keeping previous: %v", err)
		return
	}

	l.mu.Lock()
	l.current = cfg
	subs := make([]func(Config), len(l.subscribers))
	copy(subs, l.subscribers)
	l.mu.Unlock()

	l.logger.Printf("config reloaded from %s", l.configFile)
	for _, fn := range subs {
		fn(cfg)
	}
}
