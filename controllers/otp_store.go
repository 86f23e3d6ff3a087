package controllers

import (
	"time"

	"github.com/rahulnm/zestmart/config"
	"github.com/rahulnm/zestmart/utils"
)

const otpTTL = 10 * time.Minute

// otpStore holds pending phone and reset OTPs. Redis-backed when
// configured, in-process otherwise.
var otpStore utils.OTPStore = utils.NewMemoryOTPStore()

// InitOTPStore switches the OTP store to Redis when a client is available.
// Must run after config.InitRedis.
func InitOTPStore() {
	if config.Redis != nil {
		otpStore = utils.NewRedisOTPStore(config.Redis)
		utils.LogInfo("OTP store backed by Redis")
		return
	}
	utils.LogInfo("OTP store running in-process")
}
