package config

import (
	"strings"
	"testing"
)

func TestDefaultConfiguration(t *testing.T) {
	conf := DefaultConfiguration()

	if !conf.Reports.DigitalAds.Enabled {
		t.Error("digital ads report should be enabled by default")
	}
	if conf.Reports.DigitalAds.AdBudget != 1000 {
		t.Errorf("default ad budget = %v, expected 1000", conf.Reports.DigitalAds.AdBudget)
	}
	if conf.Reports.DigitalAds.CPM != 10 {
		t.Errorf("default CPM = %v, expected 10", conf.Reports.DigitalAds.CPM)
	}
	if conf.Reports.Flyer.NumFlyers != 5000 {
		t.Errorf("default flyer count = %v, expected 5000", conf.Reports.Flyer.NumFlyers)
	}
	if conf.Reports.CommerceReward.BagRetailPrice != 0.40 {
		t.Errorf("default bag retail price = %v, expected 0.40", conf.Reports.CommerceReward.BagRetailPrice)
	}
	if conf.Reports.Investor.Enabled {
		t.Error("investor report should be disabled by default")
	}
	if conf.Reports.CrossChannel.Enabled {
		t.Error("cross-channel report should be disabled by default")
	}
}

func TestDefaultScenarios(t *testing.T) {
	scenarios := DefaultScenarios()
	if len(scenarios) != 3 {
		t.Fatalf("DefaultScenarios() returned %d scenarios, expected 3", len(scenarios))
	}
	names := []string{"Conservative", "Moderate", "Optimistic"}
	for i, sc := range scenarios {
		if sc.Name != names[i] {
			t.Errorf("scenario %d = %q, expected %q", i, sc.Name, names[i])
		}
		if sc.ScanRatePercent <= 0 || sc.ConversionRatePercent <= 0 {
			t.Errorf("scenario %q has non-positive rates: %+v", sc.Name, sc)
		}
	}
}

func TestLoadConfigurationFromReader(t *testing.T) {
	yaml := `
reports:
  digitalads:
    adbudget: 2500.0
    cpm: 12.5
  flyer:
    enabled: false
  investor:
    enabled: true
    initialinvestment: 50000.0
`
	conf, err := LoadConfigurationFromReader(strings.NewReader(yaml))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader unexpected error: %v", err)
	}

	if conf.Reports.DigitalAds.AdBudget != 2500 {
		t.Errorf("ad budget = %v, expected 2500", conf.Reports.DigitalAds.AdBudget)
	}
	if conf.Reports.DigitalAds.CPM != 12.5 {
		t.Errorf("CPM = %v, expected 12.5", conf.Reports.DigitalAds.CPM)
	}
	// Unset keys fall back to benchmark defaults.
	if conf.Reports.DigitalAds.CTRPercent != 1.0 {
		t.Errorf("CTR = %v, expected the 1.0 default", conf.Reports.DigitalAds.CTRPercent)
	}
	if conf.Reports.Flyer.Enabled {
		t.Error("flyer report should be disabled by the config")
	}
	if !conf.Reports.Investor.Enabled || conf.Reports.Investor.InitialInvestment != 50000 {
		t.Errorf("investor config not applied: %+v", conf.Reports.Investor)
	}
	if conf.Reports.Investor.CurrentValue != 150000 {
		t.Errorf("investor current value = %v, expected the 150000 default", conf.Reports.Investor.CurrentValue)
	}
}

func TestLoadConfigurationFromReaderScenarios(t *testing.T) {
	yaml := `
reports:
  bagbuddy:
    scenarios:
      - name: Pilot
        scanratepercent: 4.0
        conversionratepercent: 35.0
`
	conf, err := LoadConfigurationFromReader(strings.NewReader(yaml))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader unexpected error: %v", err)
	}
	if len(conf.Reports.BagBuddy.Scenarios) != 1 {
		t.Fatalf("scenarios = %+v, expected one entry", conf.Reports.BagBuddy.Scenarios)
	}
	sc := conf.Reports.BagBuddy.Scenarios[0]
	if sc.Name != "Pilot" || sc.ScanRatePercent != 4.0 || sc.ConversionRatePercent != 35.0 {
		t.Errorf("scenario = %+v, expected Pilot/4.0/35.0", sc)
	}
}

func TestLoadConfigurationFromReaderMalformed(t *testing.T) {
	_, err := LoadConfigurationFromReader(strings.NewReader("reports: ["))
	if err == nil {
		t.Error("malformed YAML should return an error")
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	_, err := LoadConfiguration("testdata/does_not_exist.yaml")
	if err == nil {
		t.Error("missing config file should return an error")
	}
}

func TestValidateConfigurationDefaults(t *testing.T) {
	conf := DefaultConfiguration()
	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("default configuration produced warnings: %v", warnings)
	}
}

func TestValidateConfigurationWarnings(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Configuration)
		keyword string
	}{
		{
			"negative ad budget",
			func(c *Configuration) { c.Reports.DigitalAds.AdBudget = -100 },
			"budget is negative",
		},
		{
			"ctr over 100",
			func(c *Configuration) { c.Reports.DigitalAds.CTRPercent = 150 },
			"exceeds 100%",
		},
		{
			"negative flyer count",
			func(c *Configuration) { c.Reports.Flyer.NumFlyers = -1 },
			"flyer count is negative",
		},
		{
			"negative flyer unit cost",
			func(c *Configuration) { c.Reports.Flyer.PrintCostPerFlyer = -0.05 },
			"unit costs",
		},
		{
			"scenario scan rate negative",
			func(c *Configuration) {
				c.Reports.BagBuddy.Scenarios = []BagBuddyScenario{
					{Name: "Bad", ScanRatePercent: -2, ConversionRatePercent: 20},
				}
			},
			"scan rate is negative",
		},
		{
			"tier percentages off",
			func(c *Configuration) { c.Reports.CommerceReward.PctBronze = 80 },
			"tier percentages sum",
		},
		{
			"per-view economics unbalanced",
			func(c *Configuration) { c.Reports.CommerceReward.CashCreditPerView = 0.10 },
			"per-view economics",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			conf := DefaultConfiguration()
			test.mutate(conf)
			warnings := conf.ValidateConfiguration()
			found := false
			for _, w := range warnings {
				if strings.Contains(w, test.keyword) {
					found = true
				}
			}
			if !found {
				t.Errorf("warnings %v do not mention %q", warnings, test.keyword)
			}
		})
	}
}
