package service

import (
	"log"

	"github.com/AnvilCoder/SecondHand/internal/common"
	"github.com/AnvilCoder/SecondHand/internal/config"
	"github.com/AnvilCoder/SecondHand/internal/utils"
)

// GenerateCaptcha 生成图形验证码，未开启时返回 not found。
func GenerateCaptcha() (id string, b64 string, err error) {
	if !config.Get().Captcha.Enabled {
		return "", "", common.NewNotFoundError("验证码未开启")
	}
	id, b64, _, err = utils.MakeCaptcha()
	if err != nil {
		log.Printf("❌ 生成验证码失败: %v", err)
		return "", "", common.NewInternalError("生成验证码失败")
	}
	return id, b64, nil
}
