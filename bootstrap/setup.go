package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/firebase/genkit/go/plugins/googlegenai"
	"github.com/firebase/genkit/go/plugins/ollama"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/va6996/dateaware/config"
	"github.com/va6996/dateaware/dateaware"
	"github.com/va6996/dateaware/dayinfo"
	"github.com/va6996/dateaware/expand"
	"github.com/va6996/dateaware/holiday"
	"github.com/va6996/dateaware/host"
	"github.com/va6996/dateaware/log"
	"github.com/va6996/dateaware/orm"
	"github.com/va6996/dateaware/plugins"
	"github.com/va6996/dateaware/plugins/compat"
	"github.com/va6996/dateaware/plugins/llm"
	"github.com/va6996/dateaware/tools"
	"gorm.io/gorm"
)

// ModelAlias is the configured model name that resolves to the active AI plugin's model
const ModelAlias = "replyer"

// App holds the initialized components of the application
type App struct {
	Config   *config.Config
	Genkit   *genkit.Genkit
	Host     *host.Host
	Plugin   *dateaware.Plugin
	Holidays *holiday.Loader
	Model    ai.Model
	Metrics  *prometheus.Registry

	db *gorm.DB
}

// Setup initializes the application components based on the configuration
func Setup(ctx context.Context, cfg *config.Config) (*App, error) {
	// 1. Setup Genkit with AI Plugin
	gk, model, err := setupGenkit(ctx, cfg.AI)
	if err != nil {
		return nil, err
	}

	// 2. Holiday data: persisted cache in front of the remote calendar
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	store, db, err := setupStore(cfg.Holiday)
	if err != nil {
		return nil, err
	}
	source := holiday.NewHTTPSource(cfg.Holiday.SourceURL, time.Duration(cfg.Holiday.TimeoutSeconds)*time.Second)
	loader := holiday.NewLoader(store, source, holiday.NewMetrics(reg))

	// 3. Optional LLM expansion
	var client plugins.LLMClient
	if m := llm.ResolveModel(gk, cfg.Date.LLMModel, map[string]ai.Model{ModelAlias: model}); m != nil {
		client = llm.NewClient(gk, m)
	} else if cfg.Date.EnableLLMExpand {
		log.Warnf(ctx, "Model %q not found; date expansion will fall back to raw text", cfg.Date.LLMModel)
	}

	// 4. Mount the plugin
	h := host.New(gk, tools.NewRegistry())
	plugin := dateaware.NewPlugin(*cfg, dayinfo.NewFormatter(loader), expand.New(client))
	h.Register(ctx, plugin)

	return &App{
		Config:   cfg,
		Genkit:   gk,
		Host:     h,
		Plugin:   plugin,
		Holidays: loader,
		Model:    model,
		Metrics:  reg,
		db:       db,
	}, nil
}

// Close releases the SQL cache connection, if any
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func setupGenkit(ctx context.Context, cfg config.AIConfig) (*genkit.Genkit, ai.Model, error) {
	switch cfg.Plugin {
	case "ollama":
		log.Infof(ctx, "Using Ollama Plugin (Model: %s)...", cfg.Ollama.Model)
		ollamaPlugin := &ollama.Ollama{
			ServerAddress: cfg.Ollama.BaseURL,
		}
		gk := genkit.Init(ctx, genkit.WithPlugins(ollamaPlugin))
		model := ollamaPlugin.DefineModel(gk, ollama.ModelDefinition{
			Name: cfg.Ollama.Model,
			Type: "chat",
		}, &ai.ModelOptions{
			Supports: &ai.ModelSupports{
				Multiturn:  true,
				SystemRole: true,
				Tools:      true,
			},
		})
		return gk, model, nil

	case "gemini":
		log.Info(ctx, "Using Gemini Plugin...")
		if cfg.Gemini.APIKey == "" {
			return nil, nil, fmt.Errorf("GEMINI_API_KEY must be set (or set AI_PLUGIN=ollama)")
		}
		gk := genkit.Init(ctx, genkit.WithPlugins(&googlegenai.GoogleAI{
			APIKey: cfg.Gemini.APIKey,
		}))
		return gk, googlegenai.GoogleAIModel(gk, cfg.Gemini.Model), nil

	case "compat":
		if cfg.Compat.Model == "" {
			return nil, nil, fmt.Errorf("COMPAT_MODEL must be set for the compat AI plugin")
		}
		log.Infof(ctx, "Using OpenAI-compatible Plugin %s (Model: %s)...", cfg.Compat.Provider, cfg.Compat.Model)
		compatPlugin := &compat.Compat{
			Provider: cfg.Compat.Provider,
			APIKey:   cfg.Compat.APIKey,
			BaseURL:  cfg.Compat.BaseURL,
			Models:   []string{cfg.Compat.Model},
		}
		gk := genkit.Init(ctx, genkit.WithPlugins(compatPlugin))
		return gk, compatPlugin.Model(gk, cfg.Compat.Model), nil

	case "none", "":
		log.Info(ctx, "No AI plugin configured; LLM expansion disabled")
		return genkit.Init(ctx), nil, nil

	default:
		return nil, nil, fmt.Errorf("unknown AI plugin: %s", cfg.Plugin)
	}
}

func setupStore(cfg config.HolidayConfig) (holiday.Store, *gorm.DB, error) {
	switch cfg.CacheBackend {
	case "file", "":
		return holiday.NewFileStore(cfg.CacheDir), nil, nil
	case "sqlite", "postgres":
		db, err := orm.Open(cfg.CacheBackend, cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		store, err := orm.NewHolidayStore(db)
		if err != nil {
			return nil, nil, err
		}
		return store, db, nil
	default:
		return nil, nil, fmt.Errorf("unknown holiday cache backend: %s", cfg.CacheBackend)
	}
}
