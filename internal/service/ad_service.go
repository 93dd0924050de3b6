package service

import (
	"errors"
	"log"
	"mime/multipart"

	"github.com/AnvilCoder/SecondHand/internal/common"
	"github.com/AnvilCoder/SecondHand/internal/dto"
	"github.com/AnvilCoder/SecondHand/internal/model"
	"github.com/AnvilCoder/SecondHand/internal/utils"

	"gorm.io/gorm"
)

func validateAdFields(req *dto.CreateOrUpdateAdRequest) error {
	if ok, msg := utils.ValidateAdTitle(req.Title); !ok {
		return common.NewValidationError(msg)
	}
	if ok, msg := utils.ValidateAdDescription(req.Description); !ok {
		return common.NewValidationError(msg)
	}
	if req.Price == nil {
		return common.NewValidationError("价格不能为空")
	}
	if ok, msg := utils.ValidateAdPrice(*req.Price); !ok {
		return common.NewValidationError(msg)
	}
	return nil
}

// GetAll 列出全部广告，未登录也可访问。
func (s *AdService) GetAll() (*dto.AdsResponse, error) {
	ads, err := s.adStore.FindAll()
	if err != nil {
		return nil, err
	}
	resp := dto.ToAdsResponse(ads)
	return &resp, nil
}

// GetAdInfo 获取带发布者联系方式的广告详情。
func (s *AdService) GetAdInfo(adID uint) (*dto.ExtendedAdResponse, error) {
	ad, err := s.adStore.FindByID(adID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("广告不存在")
		}
		return nil, err
	}
	resp := dto.ToExtendedAdResponse(ad)
	return &resp, nil
}

// GetUserAds 列出指定用户发布的广告。
func (s *AdService) GetUserAds(userID uint) (*dto.AdsResponse, error) {
	ads, err := s.adStore.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToAdsResponse(ads)
	return &resp, nil
}

// Create 发布广告，配图可选；入库失败时回滚已落盘的配图。
func (s *AdService) Create(userID uint, req *dto.CreateOrUpdateAdRequest, file *multipart.FileHeader) (*dto.AdResponse, error) {
	if err := validateAdFields(req); err != nil {
		return nil, err
	}

	var imageID *uint
	if file != nil {
		record, err := s.imageService.Save(file)
		if err != nil {
			return nil, err
		}
		imageID = &record.ID
	}

	ad := model.Ad{
		Title:       req.Title,
		Description: req.Description,
		Price:       *req.Price,
		ImageID:     imageID,
		UserID:      userID,
	}
	if err := s.adStore.Create(&ad); err != nil {
		if imageID != nil {
			_ = s.imageService.Delete(*imageID)
		}
		return nil, err
	}

	resp := dto.ToAdResponse(&ad)
	return &resp, nil
}

// Update 修改广告的标题、描述、价格。
func (s *AdService) Update(adID uint, req *dto.CreateOrUpdateAdRequest) (*dto.AdResponse, error) {
	if err := validateAdFields(req); err != nil {
		return nil, err
	}

	exists, err := s.adStore.Exists(adID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.NewNotFoundError("广告不存在")
	}

	if err := s.adStore.UpdateFields(adID, req.Title, req.Description, *req.Price); err != nil {
		return nil, err
	}

	ad, err := s.adStore.FindByID(adID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToAdResponse(ad)
	return &resp, nil
}

// UpdateImage 换广告配图：先落盘新图再挂接，最后清理旧图。
func (s *AdService) UpdateImage(adID uint, file *multipart.FileHeader) (*dto.AdResponse, error) {
	ad, err := s.adStore.FindByID(adID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("广告不存在")
		}
		return nil, err
	}
	oldImageID := ad.ImageID

	record, err := s.imageService.Save(file)
	if err != nil {
		return nil, err
	}

	if err := s.adStore.UpdateImage(adID, &record.ID); err != nil {
		_ = s.imageService.Delete(record.ID)
		return nil, err
	}

	if oldImageID != nil {
		if err := s.imageService.Delete(*oldImageID); err != nil {
			log.Printf("⚠️ 清理旧配图失败: %v", err)
		}
	}

	refreshed, err := s.adStore.FindByID(adID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToAdResponse(refreshed)
	return &resp, nil
}

// Delete 删除广告、其下全部评论和配图，文件随记录一并清理。
func (s *AdService) Delete(adID uint) error {
	orphaned, err := s.adStore.DeleteCascade(adID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFoundError("广告不存在")
		}
		return err
	}
	if orphaned != nil {
		s.imageService.RemoveFile(orphaned)
	}
	return nil
}

// Exists 判断广告是否存在。
func (s *AdService) Exists(adID uint) (bool, error) {
	return s.adStore.Exists(adID)
}

// IsOwner 判断广告是否由指定用户发布，广告不存在返回 not found。
func (s *AdService) IsOwner(adID, userID uint) (bool, error) {
	ownerID, err := s.adStore.OwnerID(adID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, common.NewNotFoundError("广告不存在")
		}
		return false, err
	}
	return ownerID == userID, nil
}
