package game

// Ambient conditions combine three independently clocked sources: a weather
// preset re-rolled on time advances, a cyclic season, and an optional
// transient event. Their modifiers add.

// BodyNeutralTemp is the ambient baseline before any modifier applies.
const BodyNeutralTemp = 37

type Weather struct {
	Name             string  `json:"name"`
	TemperatureShift int     `json:"temperature_shift"`
	ThirstRate       int     `json:"thirst_rate"`
	FireModifier     float64 `json:"fire_modifier"`
	HuntModifier     float64 `json:"hunt_modifier"`
	Mood             string  `json:"mood"`
}

type Season struct {
	Name          string
	TempShift     int
	RegenModifier int
	HuntModifier  float64
	Description   string
}

type Event struct {
	Name          string  `json:"name"`
	DurationHours int     `json:"duration_hours"`
	TempShift     int     `json:"temp_shift"`
	ThirstRate    int     `json:"thirst_rate"`
	FireModifier  float64 `json:"fire_modifier"`
	HuntModifier  float64 `json:"hunt_modifier"`
	RegenModifier int     `json:"regen_modifier"`
	Description   string  `json:"description"`
}

// ActiveEvent is an event in progress and the hours it has left.
type ActiveEvent struct {
	Event          Event `json:"event"`
	RemainingHours int   `json:"remaining_hours"`
}

func WeatherCatalog() []Weather {
	return []Weather{
		{Name: "Clear", TemperatureShift: 0, ThirstRate: 0, FireModifier: 0, HuntModifier: 0, Mood: "High thin cloud and light wind hold through the day."},
		{Name: "Rain", TemperatureShift: -2, ThirstRate: -1, FireModifier: -0.15, HuntModifier: -0.05, Mood: "Steady rain dampens every fuel surface."},
		{Name: "Storm", TemperatureShift: -4, ThirstRate: 1, FireModifier: -0.35, HuntModifier: -0.2, Mood: "Gust fronts and thunder cut decision windows short."},
		{Name: "Heatwave", TemperatureShift: 4, ThirstRate: 2, FireModifier: 0.1, HuntModifier: -0.1, Mood: "Hot dry air shimmers over exposed ground."},
		{Name: "Frostwind", TemperatureShift: -6, ThirstRate: 1, FireModifier: 0.2, HuntModifier: -0.05, Mood: "Cold gusts carry fine ice grains through every seam."},
		{Name: "Fairy Mist", TemperatureShift: -1, ThirstRate: 0, FireModifier: 0.05, HuntModifier: 0.1, Mood: "Low fog bands glow with drifting points of light."},
	}
}

// SeasonCatalog is ordered; the clock walks it cyclically.
func SeasonCatalog() []Season {
	return []Season{
		{Name: "Spring", TempShift: 0, RegenModifier: 1, HuntModifier: 0.05, Description: "Buds and meltwater; everything grows back quickly."},
		{Name: "Summer", TempShift: 2, RegenModifier: 0, HuntModifier: 0.05, Description: "Long days and dry ground."},
		{Name: "Autumn", TempShift: -1, RegenModifier: 0, HuntModifier: 0, Description: "Shortening days and a last push of berries."},
		{Name: "Winter", TempShift: -4, RegenModifier: -1, HuntModifier: -0.1, Description: "Frozen ground and scarce regrowth."},
	}
}

func EventCatalog() []Event {
	return []Event{
		{Name: "Game Migration", DurationHours: 12, HuntModifier: 0.15, Description: "Herds move through the valley."},
		{Name: "Drought", DurationHours: 24, TempShift: 2, ThirstRate: 2, RegenModifier: -1, Description: "Springs shrink and leaves curl."},
		{Name: "Cold Snap", DurationHours: 18, TempShift: -4, FireModifier: -0.1, Description: "A hard frost settles overnight."},
		{Name: "Berry Bloom", DurationHours: 24, RegenModifier: 1, Description: "Bushes fruit out of season."},
		{Name: "Smoke Haze", DurationHours: 12, ThirstRate: 1, HuntModifier: -0.1, Description: "Distant fires stain the sky brown."},
	}
}

// ColdSeasonEvents extend the event table while the coldest season is active.
func ColdSeasonEvents() []Event {
	return []Event{
		{Name: "Blizzard Front", DurationHours: 12, TempShift: -6, FireModifier: -0.2, HuntModifier: -0.15, Description: "A wall of snow rolls in off the ridges."},
	}
}

func coldestSeasonIndex(seasons []Season) int {
	coldest := 0
	for i, s := range seasons {
		if s.TempShift < seasons[coldest].TempShift {
			coldest = i
		}
	}
	return coldest
}

// Climate is the modifier stack. Weather and the active event are replaced
// wholesale when they change, never edited in place.
type Climate struct {
	Weather         Weather
	Seasons         []Season
	SeasonIndex     int
	SeasonHours     int
	ActiveEvent     *ActiveEvent
	EventClockHours int
}

func (c *Climate) Season() Season {
	if len(c.Seasons) == 0 {
		return Season{}
	}
	return c.Seasons[clamp(c.SeasonIndex, 0, len(c.Seasons)-1)]
}

func (c *Climate) event() Event {
	if c.ActiveEvent == nil {
		return Event{}
	}
	return c.ActiveEvent.Event
}

// InColdestSeason reports whether the extended event table applies.
func (c *Climate) InColdestSeason() bool {
	return len(c.Seasons) > 0 && c.SeasonIndex == coldestSeasonIndex(c.Seasons)
}

// AmbientTemp combines the body-neutral baseline with location, weather,
// season and event shifts.
func (c *Climate) AmbientTemp(env *Environment) int {
	bias := 0
	if env != nil {
		bias = env.TempBias
	}
	return BodyNeutralTemp + bias + c.Weather.TemperatureShift + c.Season().TempShift + c.event().TempShift
}

func (c *Climate) ThirstRate() int {
	return c.Weather.ThirstRate + c.event().ThirstRate
}

func (c *Climate) FireModifier() float64 {
	return c.Weather.FireModifier + c.event().FireModifier
}

func (c *Climate) HuntModifier() float64 {
	return c.Weather.HuntModifier + c.Season().HuntModifier + c.event().HuntModifier
}

func (c *Climate) RegenModifier() int {
	return c.Season().RegenModifier + c.event().RegenModifier
}

func (c *Climate) eventTable() []Event {
	table := EventCatalog()
	if c.InColdestSeason() {
		table = append(table, ColdSeasonEvents()...)
	}
	return table
}
