package config

type (
	InternalConfig struct {
		App    App
		Logger Logger
	}

	App struct {
		Env                     string
		BaseURL                 string
		RequestTimeoutInSeconds int
		RequestsPerSecond       int
		SessionFile             string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
