package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("COLLAGE_SERVER_HOST")
	os.Unsetenv("COLLAGE_SERVER_PORT")
	os.Unsetenv("COLLAGE_WEIGHT_UTILIZATION")
	os.Unsetenv("COLLAGE_WEIGHT_CROPPING")
	os.Unsetenv("COLLAGE_WEIGHT_BALANCE")
	os.Unsetenv("COLLAGE_STRICT_PRECISION")
	os.Unsetenv("COLLAGE_SPLIT_RATIO")
	os.Unsetenv("COLLAGE_PAGE_WIDTH")
	os.Unsetenv("COLLAGE_PAGE_HEIGHT")

	cfg := Load()

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("expected default host '0.0.0.0', got '%s'", cfg.Server.Host)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Engine.UtilizationWeight != 0.4 || cfg.Engine.CroppingWeight != 0.4 || cfg.Engine.BalanceWeight != 0.2 {
		t.Errorf("unexpected default weights: %+v", cfg.Engine)
	}
	if cfg.Engine.StrictPrecision != 6 {
		t.Errorf("expected default strict precision 6, got %d", cfg.Engine.StrictPrecision)
	}
	if cfg.Engine.SplitRatio != 0.5 {
		t.Errorf("expected default split ratio 0.5, got %f", cfg.Engine.SplitRatio)
	}
	if cfg.Page.Width != 297 || cfg.Page.Height != 210 {
		t.Errorf("expected default A4 landscape page, got %+v", cfg.Page)
	}
}

func TestLoad_ServerConfig(t *testing.T) {
	t.Setenv("COLLAGE_SERVER_HOST", "127.0.0.1")
	t.Setenv("COLLAGE_SERVER_PORT", "9090")

	cfg := Load()

	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("expected host '127.0.0.1', got '%s'", cfg.Server.Host)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
}

func TestLoad_EngineConfig(t *testing.T) {
	t.Setenv("COLLAGE_WEIGHT_UTILIZATION", "0.5")
	t.Setenv("COLLAGE_WEIGHT_CROPPING", "0.3")
	t.Setenv("COLLAGE_WEIGHT_BALANCE", "0.2")
	t.Setenv("COLLAGE_STRICT_PRECISION", "4")
	t.Setenv("COLLAGE_SPLIT_RATIO", "0.6")

	cfg := Load()

	if cfg.Engine.UtilizationWeight != 0.5 {
		t.Errorf("expected utilization weight 0.5, got %f", cfg.Engine.UtilizationWeight)
	}
	if cfg.Engine.CroppingWeight != 0.3 {
		t.Errorf("expected cropping weight 0.3, got %f", cfg.Engine.CroppingWeight)
	}
	if cfg.Engine.BalanceWeight != 0.2 {
		t.Errorf("expected balance weight 0.2, got %f", cfg.Engine.BalanceWeight)
	}
	if cfg.Engine.StrictPrecision != 4 {
		t.Errorf("expected strict precision 4, got %d", cfg.Engine.StrictPrecision)
	}
	if cfg.Engine.SplitRatio != 0.6 {
		t.Errorf("expected split ratio 0.6, got %f", cfg.Engine.SplitRatio)
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("COLLAGE_SERVER_PORT", "not-a-port")

	cfg := Load()

	if cfg.Server.Port != 8080 {
		t.Errorf("expected fallback to default port for invalid input, got %d", cfg.Server.Port)
	}
}

func TestLoad_NegativePrecision(t *testing.T) {
	t.Setenv("COLLAGE_STRICT_PRECISION", "-3")

	cfg := Load()

	if cfg.Engine.StrictPrecision != 6 {
		t.Errorf("expected fallback to default precision for negative input, got %d", cfg.Engine.StrictPrecision)
	}
}

func TestLoad_InvalidWeight(t *testing.T) {
	t.Setenv("COLLAGE_WEIGHT_UTILIZATION", "lots")

	cfg := Load()

	if cfg.Engine.UtilizationWeight != 0.4 {
		t.Errorf("expected fallback to default weight for invalid input, got %f", cfg.Engine.UtilizationWeight)
	}
}

func TestLoad_ZeroWeightFallsBack(t *testing.T) {
	t.Setenv("COLLAGE_WEIGHT_BALANCE", "0")

	cfg := Load()

	if cfg.Engine.BalanceWeight != 0.2 {
		t.Errorf("expected fallback to default weight for zero input, got %f", cfg.Engine.BalanceWeight)
	}
}

func TestLoad_PageConfig(t *testing.T) {
	t.Setenv("COLLAGE_PAGE_WIDTH", "420")
	t.Setenv("COLLAGE_PAGE_HEIGHT", "297")

	cfg := Load()

	if cfg.Page.Width != 420 || cfg.Page.Height != 297 {
		t.Errorf("expected 420x297 page, got %+v", cfg.Page)
	}
}
