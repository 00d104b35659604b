package models

//BME680Reading is an environmental reading from the BME680 gas sensor
type BME680Reading struct {
	Temperature   *float64 `json:"temperature" validate:"required"`
	Humidity      *float64 `json:"humidity" validate:"required,gte=0"`
	Pressure      *float64 `json:"pressure" validate:"required,gte=0"`
	GasResistance *float64 `json:"gas_resistance" validate:"required,gte=0"`
}

//MPU6500Reading is an inertial reading from the MPU6500 accelerometer and
//gyroscope. The flat six field shape is the canonical one; the historical
//nested x/y/z variant is not accepted.
type MPU6500Reading struct {
	AccelerationX *float64 `json:"acceleration_x" validate:"required"`
	AccelerationY *float64 `json:"acceleration_y" validate:"required"`
	AccelerationZ *float64 `json:"acceleration_z" validate:"required"`
	GyroscopeX    *float64 `json:"gyroscope_x" validate:"required"`
	GyroscopeY    *float64 `json:"gyroscope_y" validate:"required"`
	GyroscopeZ    *float64 `json:"gyroscope_z" validate:"required"`
}

//NEO7MReading is a generic positioning fix from the NEO-7M GPS module
type NEO7MReading struct {
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
	Altitude  *float64 `json:"altitude" validate:"required,gte=0"`
	Speed     *float64 `json:"speed" validate:"required"`
	Date      *string  `json:"date" validate:"required"`
	Time      *string  `json:"time" validate:"required"`
}

//GPRMCReading is the recommended minimum position sentence
type GPRMCReading struct {
	Valid     *bool    `json:"valid" validate:"required"`
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
	Speed     *float64 `json:"speed" validate:"required,gte=0"`
	Date      *string  `json:"date" validate:"required"`
}

//GPVTGReading is the track made good and ground speed sentence
type GPVTGReading struct {
	TrueTrackDegress *float64 `json:"true_track_degress" validate:"required"`
	SpeedKph         *float64 `json:"speed_kph" validate:"required,gte=0"`
}

//GPGGAReading is the fix information sentence
type GPGGAReading struct {
	Latitude    *float64 `json:"latitude" validate:"required"`
	Longitude   *float64 `json:"longitude" validate:"required"`
	Altitude    *float64 `json:"altitude" validate:"required,gte=0"`
	FixQuality  *int     `json:"fix_quality" validate:"required,oneof=1 2 3"`
	Satelites   *int     `json:"satelites" validate:"required,gte=0,lte=18"`
	HDOP        *float64 `json:"hdop" validate:"required"`
	HeightGeoid *float64 `json:"height_geoid" validate:"required"`
	Time        *string  `json:"time" validate:"required"`
}

//GPGSAReading is the overall satellite data sentence
type GPGSAReading struct {
	Mode      *string   `json:"mode" validate:"required,oneof=A M"`
	FixType   *int      `json:"fix_type" validate:"required,oneof=1 2 3"`
	Satelites []float64 `json:"satelites" validate:"required,dive,gte=0,lte=12"`
	PDOP      *float64  `json:"pdop" validate:"required"`
	HDOP      *float64  `json:"hdop" validate:"required"`
	VDOP      *float64  `json:"vdop" validate:"required"`
}

//GPGLLReading is the geographic latitude/longitude sentence
type GPGLLReading struct {
	Mode      *string  `json:"mode" validate:"required,oneof=A V"`
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
	Time      *string  `json:"time" validate:"required"`
}

//GSVSatellite is a single satellite entry within a GPGSV sentence
type GSVSatellite struct {
	PRN       *int     `json:"prn" validate:"required,gte=0,lte=12"`
	Elevation *float64 `json:"elevation" validate:"required,gte=0,lte=90"`
	Azimuth   *float64 `json:"azimuth" validate:"required,gte=0,lte=359"`
	SNR       *float64 `json:"snr" validate:"required"`
}

//GPGSVReading is the satellites in view sentence
type GPGSVReading struct {
	TotalMessages *int           `json:"total_messages" validate:"required,oneof=1 2 3"`
	MessageNumber *int           `json:"message_number" validate:"required,oneof=1 2 3"`
	Satelites     []GSVSatellite `json:"satelites" validate:"required,dive"`
}

//MQ9Reading is a combustible gas reading from the MQ-9 sensor
type MQ9Reading struct {
	LPGRatio *float64 `json:"lpg_ratio" validate:"required,gte=0"`
	CORatio  *float64 `json:"co_ratio" validate:"required,gte=0"`
	CH4Ratio *float64 `json:"ch4_ratio" validate:"required,gte=0"`
}

//SEN0159Reading is a CO2 concentration reading from the SEN0159 sensor
type SEN0159Reading struct {
	CO2PPM *float64 `json:"co2_ppm" validate:"required,gte=0"`
}

//SEN0322Reading is an oxygen concentration reading from the SEN0322 sensor
type SEN0322Reading struct {
	OxygenPercentage *float64 `json:"oxygen_percentage" validate:"required,gte=0,lte=100"`
}
