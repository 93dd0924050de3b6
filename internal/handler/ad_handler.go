package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AnvilCoder/SecondHand/internal/common/httpx"
	"github.com/AnvilCoder/SecondHand/internal/dto"

	"github.com/gin-gonic/gin"
)

// GetAds 列出全部广告，免登录。
func (h *Handler) GetAds(c *gin.Context) {
	resp, err := h.services.Ad.GetAll()
	if err != nil {
		httpx.WriteServiceError(c, err, "获取广告列表失败")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetAd 获取广告详情（含发布者联系方式）。
func (h *Handler) GetAd(c *gin.Context) {
	adID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.services.Ad.GetAdInfo(adID)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取广告详情失败")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetMyAds 列出当前用户发布的广告。
func (h *Handler) GetMyAds(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	resp, err := h.services.Ad.GetUserAds(uid)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取广告列表失败")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateAd 发布广告。multipart 表单：properties 为 JSON 字段，image 为可选图片。
func (h *Handler) CreateAd(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	properties := c.PostForm("properties")
	if properties == "" {
		httpx.WriteError(c, http.StatusBadRequest, "缺少 properties 字段")
		return
	}

	var req dto.CreateOrUpdateAdRequest
	if err := json.Unmarshal([]byte(properties), &req); err != nil {
		httpx.WriteError(c, http.StatusBadRequest, "properties 格式错误")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		if !errors.Is(err, http.ErrMissingFile) {
			httpx.WriteError(c, http.StatusBadRequest, "读取图片失败")
			return
		}
		file = nil // 配图可选
	}

	resp, err := h.services.Ad.Create(uid, &req, file)
	if err != nil {
		httpx.WriteServiceError(c, err, "发布广告失败")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdateAd 修改广告的标题、描述、价格，需要是发布者或管理员。
func (h *Handler) UpdateAd(c *gin.Context) {
	adID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.authorizeAd(c, adID); err != nil {
		httpx.WriteServiceError(c, err, "服务器内部错误")
		return
	}

	var req dto.CreateOrUpdateAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteError(c, http.StatusBadRequest, "参数格式错误")
		return
	}

	resp, err := h.services.Ad.Update(adID, &req)
	if err != nil {
		httpx.WriteServiceError(c, err, "修改广告失败")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateAdImage 更换广告配图，需要是发布者或管理员。
func (h *Handler) UpdateAdImage(c *gin.Context) {
	adID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.authorizeAd(c, adID); err != nil {
		httpx.WriteServiceError(c, err, "服务器内部错误")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		httpx.WriteError(c, http.StatusBadRequest, "缺少图片文件")
		return
	}

	resp, err := h.services.Ad.UpdateImage(adID, file)
	if err != nil {
		httpx.WriteServiceError(c, err, "更换配图失败")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteAd 删除广告及其评论和配图，需要是发布者或管理员。
func (h *Handler) DeleteAd(c *gin.Context) {
	adID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.authorizeAd(c, adID); err != nil {
		httpx.WriteServiceError(c, err, "服务器内部错误")
		return
	}

	if err := h.services.Ad.Delete(adID); err != nil {
		httpx.WriteServiceError(c, err, "删除广告失败")
		return
	}
	c.Status(http.StatusNoContent)
}
