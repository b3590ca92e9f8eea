package game

import (
	"fmt"
	"maps"
)

// Balance carries every tunable of the simulation. DefaultBalance matches the
// shipped game; internal/config overlays user YAML on top of it.
type Balance struct {
	WeatherShiftChance float64 `yaml:"weather_shift_chance"`
	SeasonLengthHours  int     `yaml:"season_length_hours"`
	EventCheckHours    int     `yaml:"event_check_hours"`
	EventChance        float64 `yaml:"event_chance"`

	BaseHungerRate int `yaml:"base_hunger_rate"`
	BaseThirstRate int `yaml:"base_thirst_rate"`

	ColdAmbient        int `yaml:"cold_ambient"`
	HotAmbient         int `yaml:"hot_ambient"`
	ShelterColdAmbient int `yaml:"shelter_cold_ambient"`
	ShelterHotAmbient  int `yaml:"shelter_hot_ambient"`
	HypothermiaTemp    int `yaml:"hypothermia_temp"`
	HyperthermiaTemp   int `yaml:"hyperthermia_temp"`
	StarvationLevel    int `yaml:"starvation_level"`
	DehydrationLevel   int `yaml:"dehydration_level"`
	StarvationDamage   int `yaml:"starvation_damage"`
	DehydrationDamage  int `yaml:"dehydration_damage"`
	TemperatureDamage  int `yaml:"temperature_damage"`

	FireFailureBase   float64 `yaml:"fire_failure_base"`
	ComfortFireEase   float64 `yaml:"comfort_fire_ease"`
	ComfortEaseLevel  int     `yaml:"comfort_ease_level"`
	ComfortRegenLevel int     `yaml:"comfort_regen_level"`
	ComfortRegenBonus int     `yaml:"comfort_regen_bonus"`

	HuntBase            float64 `yaml:"hunt_base"`
	HuntRopeBonus       float64 `yaml:"hunt_rope_bonus"`
	HuntMinChance       float64 `yaml:"hunt_min_chance"`
	HuntMaxChance       float64 `yaml:"hunt_max_chance"`
	DrinkRelief         int     `yaml:"drink_relief"`
	SickWaterChance     float64 `yaml:"sick_water_chance"`
	SickWaterDamage     int     `yaml:"sick_water_damage"`
	MushroomRoastChance float64 `yaml:"mushroom_roast_chance"`

	RestBaseHeal    int `yaml:"rest_base_heal"`
	RestShelterHeal int `yaml:"rest_shelter_heal"`
	RestFireHeal    int `yaml:"rest_fire_heal"`

	StartHealth    int            `yaml:"start_health"`
	StartHunger    int            `yaml:"start_hunger"`
	StartThirst    int            `yaml:"start_thirst"`
	StartBodyTemp  int            `yaml:"start_body_temp"`
	StartHour      int            `yaml:"start_hour"`
	StartInventory map[string]int `yaml:"start_inventory"`
}

func DefaultBalance() Balance {
	return Balance{
		WeatherShiftChance: 0.35,
		SeasonLengthHours:  48,
		EventCheckHours:    24,
		EventChance:        0.10,

		BaseHungerRate: 2,
		BaseThirstRate: 3,

		ColdAmbient:        34,
		HotAmbient:         40,
		ShelterColdAmbient: 35,
		ShelterHotAmbient:  39,
		HypothermiaTemp:    34,
		HyperthermiaTemp:   40,
		StarvationLevel:    90,
		DehydrationLevel:   90,
		StarvationDamage:   2,
		DehydrationDamage:  3,
		TemperatureDamage:  5,

		FireFailureBase:   0.12,
		ComfortFireEase:   0.04,
		ComfortEaseLevel:  6,
		ComfortRegenLevel: 6,
		ComfortRegenBonus: 1,

		HuntBase:            0.45,
		HuntRopeBonus:       0.15,
		HuntMinChance:       0.1,
		HuntMaxChance:       0.9,
		DrinkRelief:         35,
		SickWaterChance:     0.25,
		SickWaterDamage:     5,
		MushroomRoastChance: 0.5,

		RestBaseHeal:    8,
		RestShelterHeal: 4,
		RestFireHeal:    4,

		StartHealth:   100,
		StartHunger:   25,
		StartThirst:   25,
		StartBodyTemp: 37,
		StartHour:     8,
		StartInventory: map[string]int{
			ItemStick: 1,
			ItemStone: 1,
			ItemWater: 1,
		},
	}
}

func (b Balance) Clone() Balance {
	b.StartInventory = maps.Clone(b.StartInventory)
	return b
}

// Validate rejects values the clock cannot run with.
func (b Balance) Validate() error {
	probabilities := map[string]float64{
		"weather_shift_chance":  b.WeatherShiftChance,
		"event_chance":          b.EventChance,
		"fire_failure_base":     b.FireFailureBase,
		"hunt_base":             b.HuntBase,
		"hunt_min_chance":       b.HuntMinChance,
		"hunt_max_chance":       b.HuntMaxChance,
		"sick_water_chance":     b.SickWaterChance,
		"mushroom_roast_chance": b.MushroomRoastChance,
	}
	for name, p := range probabilities {
		if p < 0 || p > 1 {
			return fmt.Errorf("balance.%s must be within [0,1], got %v", name, p)
		}
	}
	if b.HuntMinChance > b.HuntMaxChance {
		return fmt.Errorf("balance.hunt_min_chance %v exceeds hunt_max_chance %v", b.HuntMinChance, b.HuntMaxChance)
	}
	if b.SeasonLengthHours <= 0 {
		return fmt.Errorf("balance.season_length_hours must be positive, got %d", b.SeasonLengthHours)
	}
	if b.EventCheckHours <= 0 {
		return fmt.Errorf("balance.event_check_hours must be positive, got %d", b.EventCheckHours)
	}
	if b.StartHour < 0 || b.StartHour >= hoursPerDay {
		return fmt.Errorf("balance.start_hour must be within [0,23], got %d", b.StartHour)
	}
	if b.StartHealth <= 0 || b.StartHealth > maxVital {
		return fmt.Errorf("balance.start_health must be within [1,100], got %d", b.StartHealth)
	}
	if b.StartBodyTemp < minBodyTemp || b.StartBodyTemp > maxBodyTemp {
		return fmt.Errorf("balance.start_body_temp must be within [%d,%d], got %d", minBodyTemp, maxBodyTemp, b.StartBodyTemp)
	}
	for item, qty := range b.StartInventory {
		if qty < 0 {
			return fmt.Errorf("balance.start_inventory.%s must not be negative, got %d", item, qty)
		}
	}
	return nil
}
