package config

type Config struct {
	Version   bool
	Providers struct {
		AWS struct {
			Profile string
			RoleARN string
		}
	}
	Logging struct {
		Level       string
		OutputType  string
		Destination string
	}
	Metrics struct {
		Textfile string
	}
}
