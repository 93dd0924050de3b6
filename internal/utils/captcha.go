package utils

import "github.com/mojocn/base64Captcha"

var captchaStore = base64Captcha.DefaultMemStore

// MakeCaptcha 生成数字验证码
// id 是验证码的唯一标识，b64s 是图片的 base64 字符串
func MakeCaptcha() (id, b64s string, answer string, err error) {
	driver := base64Captcha.NewDriverDigit(80, 240, 4, 0.7, 80)
	c := base64Captcha.NewCaptcha(driver, captchaStore)
	return c.Generate()
}

// VerifyCaptcha 校验验证码，校验后立即失效
func VerifyCaptcha(id string, answer string) bool {
	return captchaStore.Verify(id, answer, true)
}
