package service

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/AnvilCoder/SecondHand/internal/common"
	"github.com/AnvilCoder/SecondHand/internal/config"
	"github.com/AnvilCoder/SecondHand/internal/consts"
	"github.com/AnvilCoder/SecondHand/internal/model"
	"github.com/AnvilCoder/SecondHand/internal/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func uploadRoot() string {
	root := config.Get().Upload.Path
	if root == "" {
		root = "uploads/imgs"
	}
	return root
}

// Save 校验并落盘上传的图片，写入数据库记录。
// 落盘文件名为 uuid 前缀 + 原始文件名；数据库写入失败时回滚已落盘的文件。
func (s *ImageService) Save(file *multipart.FileHeader) (*model.Image, error) {
	if file == nil {
		return nil, common.NewValidationError("缺少图片文件")
	}
	if file.Size > consts.MaxImageSize {
		return nil, common.NewValidationError(fmt.Sprintf("图片大小不能超过 %dMB", consts.MaxImageSize/1024/1024))
	}

	originalName := filepath.Base(file.Filename)
	if ok, msg := utils.ValidateImageFilename(originalName); !ok {
		return nil, common.NewValidationError(msg)
	}

	src, err := file.Open()
	if err != nil {
		return nil, common.NewValidationError("无法打开上传的文件")
	}
	defer func() { _ = src.Close() }()

	// 嗅探真实内容，不信任扩展名
	valid, mimeType, msg := utils.ValidateImageContent(src)
	if !valid {
		return nil, common.NewValidationError(msg)
	}

	root := uploadRoot()
	if err := os.MkdirAll(root, 0755); err != nil {
		log.Printf("❌ 创建存储目录失败: %v", err)
		return nil, common.NewInternalError("无法创建存储目录")
	}

	storedName := uuid.New().String() + "_" + originalName
	dst, err := utils.SecureJoin(root, storedName)
	if err != nil {
		return nil, common.NewValidationError("文件名不合法")
	}

	out, err := os.Create(dst)
	if err != nil {
		log.Printf("❌ 创建文件失败: %v", err)
		return nil, common.NewInternalError("无法创建文件")
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, src); err != nil {
		_ = os.Remove(dst)
		return nil, common.NewInternalError("文件保存失败")
	}

	record := model.Image{
		Filename:   originalName,
		StoredName: storedName,
		Path:       storedName,
		Size:       file.Size,
		MimeType:   mimeType,
		UploadedAt: time.Now().Unix(),
	}
	if err := s.imageStore.Create(&record); err != nil {
		// 回滚已落盘的文件
		_ = os.Remove(dst)
		log.Printf("❌ 图片入库失败: %v", err)
		return nil, common.NewInternalError("图片记录保存失败")
	}

	return &record, nil
}

// Get 读取图片内容和 MIME 类型，回读前校验路径安全。
func (s *ImageService) Get(imageID uint) ([]byte, string, error) {
	record, err := s.imageStore.FindByID(imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", common.NewNotFoundError("图片不存在")
		}
		return nil, "", err
	}

	root := uploadRoot()
	fullPath, err := utils.SecureJoin(root, record.Path)
	if err != nil {
		return nil, "", common.NewNotFoundError("图片不存在")
	}
	if err := utils.EnsureNoSymlinkBetween(root, fullPath); err != nil {
		return nil, "", common.NewNotFoundError("图片不存在")
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", common.NewNotFoundError("图片文件已丢失")
		}
		return nil, "", err
	}
	return data, record.MimeType, nil
}

// Delete 删除图片记录和落盘文件；图片不存在时静默成功。
func (s *ImageService) Delete(imageID uint) error {
	record, err := s.imageStore.FindByID(imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if err := s.imageStore.Delete(record.ID); err != nil {
		return err
	}
	s.RemoveFile(record)
	return nil
}

// RemoveFile 只删落盘文件，用于数据库记录已随级联删除的场合。
func (s *ImageService) RemoveFile(record *model.Image) {
	if record == nil {
		return
	}
	fullPath, err := utils.SecureJoin(uploadRoot(), record.Path)
	if err != nil {
		log.Printf("⚠️ 图片路径不合法，跳过删除: %s", record.Path)
		return
	}
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		log.Printf("⚠️ 删除图片文件失败: %v", err)
	}
}
