package constants

// viper keys
const (
	ViperListenAddr        = "listen_addr"
	ViperCaseSource        = "sources.cases"
	ViperVaccinationSource = "sources.vaccinations"
	ViperCORSOrigin        = "cors_origin"
	ViperWatchSources      = "watch_sources"
	ViperDebug             = "debug"
)
