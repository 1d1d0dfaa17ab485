package services

import (
	"strings"
	"time"

	"linker/internal/db"
	"linker/internal/models"

	"gorm.io/gorm"
)

// entriesInOrder preloads folder entries in insertion order.
func entriesInOrder(tx *gorm.DB) *gorm.DB {
	return tx.Order("folder_entries.id ASC")
}

// getFolder loads a folder scoped to its owner. A folder belonging to
// someone else is simply not found, mirroring the per-user document
// the folders live in.
func getFolder(userID, folderID uint) (*models.Folder, error) {
	var folder models.Folder
	if err := db.DB.First(&folder, folderID).Error; err != nil {
		return nil, ErrNotFound
	}
	if folder.UserID != userID {
		return nil, ErrNotFound
	}
	return &folder, nil
}

// CreateFolder adds a named folder for the user. Names are compared
// trimmed; duplicates conflict.
func CreateFolder(userID uint, name string) (*models.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrValidation
	}

	var count int64
	db.DB.Model(&models.Folder{}).
		Where("user_id = ? AND TRIM(name) = ?", userID, name).
		Count(&count)
	if count > 0 {
		return nil, ErrConflict
	}

	folder := models.Folder{
		UserID: userID,
		Name:   name,
	}
	if err := db.DB.Create(&folder).Error; err != nil {
		return nil, err
	}
	return &folder, nil
}

// RenameFolder renames an owned folder, conflicting with the user's
// other folder names.
func RenameFolder(userID, folderID uint, name string) (*models.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrValidation
	}

	folder, err := getFolder(userID, folderID)
	if err != nil {
		return nil, err
	}

	var count int64
	db.DB.Model(&models.Folder{}).
		Where("user_id = ? AND id != ? AND TRIM(name) = ?", userID, folderID, name).
		Count(&count)
	if count > 0 {
		return nil, ErrConflict
	}

	folder.Name = name
	if err := db.DB.Model(folder).Update("name", name).Error; err != nil {
		return nil, err
	}
	return folder, nil
}

// DeleteFolder removes an owned folder and its entries.
func DeleteFolder(userID, folderID uint) error {
	folder, err := getFolder(userID, folderID)
	if err != nil {
		return err
	}
	if err := db.DB.Where("folder_id = ?", folderID).
		Delete(&models.FolderEntry{}).Error; err != nil {
		return err
	}
	return db.DB.Delete(folder).Error
}

// Folders returns a user's folders with entries, oldest first.
func Folders(userID uint) ([]models.Folder, error) {
	var folders []models.Folder
	err := db.DB.Preload("Entries", entriesInOrder).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&folders).Error
	return folders, err
}

// eligibleForFolder checks the folder precondition: only content the
// user currently scraps (recruit/seeking) or likes (community) may be
// filed.
func eligibleForFolder(userID, postID uint, postType string) bool {
	switch postType {
	case models.PostKindRecruit:
		var post models.RecruitmentPost
		if err := db.DB.First(&post, postID).Error; err != nil {
			return false
		}
		return post.IsScrappedBy(userID)
	case models.PostKindSeeking:
		var post models.TeamSeekingPost
		if err := db.DB.First(&post, postID).Error; err != nil {
			return false
		}
		return post.IsScrappedBy(userID)
	case models.PostKindCommunity:
		var post models.CommunityPost
		if err := db.DB.First(&post, postID).Error; err != nil {
			return false
		}
		return post.IsLikedBy(userID)
	}
	return false
}

// AddFolderEntry files a (post, kind) reference into an owned folder.
func AddFolderEntry(userID, folderID, postID uint, postType string) (*models.Folder, error) {
	if !models.ValidPostKind(postType) {
		return nil, ErrValidation
	}

	folder, err := getFolderWithEntries(userID, folderID)
	if err != nil {
		return nil, err
	}

	for _, e := range folder.Entries {
		if e.PostID == postID && e.PostType == postType {
			return nil, ErrConflict
		}
	}

	if !eligibleForFolder(userID, postID, postType) {
		return nil, ErrNotEligible
	}

	entry := models.FolderEntry{
		FolderID: folderID,
		PostID:   postID,
		PostType: postType,
		AddedAt:  time.Now(),
	}
	if err := db.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	folder.Entries = append(folder.Entries, entry)
	return folder, nil
}

// RemoveFolderEntry drops a reference from an owned folder; a missing
// entry is NotFound.
func RemoveFolderEntry(userID, folderID, postID uint, postType string) (*models.Folder, error) {
	folder, err := getFolderWithEntries(userID, folderID)
	if err != nil {
		return nil, err
	}

	found := false
	for i, e := range folder.Entries {
		if e.PostID == postID && e.PostType == postType {
			if err := db.DB.Delete(&models.FolderEntry{}, e.ID).Error; err != nil {
				return nil, err
			}
			folder.Entries = append(folder.Entries[:i], folder.Entries[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return nil, ErrNotFound
	}
	return folder, nil
}

func getFolderWithEntries(userID, folderID uint) (*models.Folder, error) {
	var folder models.Folder
	if err := db.DB.Preload("Entries", entriesInOrder).First(&folder, folderID).Error; err != nil {
		return nil, ErrNotFound
	}
	if folder.UserID != userID {
		return nil, ErrNotFound
	}
	return &folder, nil
}

// FolderPost is a folder entry resolved against its collection for
// display.
type FolderPost struct {
	PostType  string
	AddedAt   time.Time
	Recruit   *models.RecruitmentPost
	Seeking   *models.TeamSeekingPost
	Community *models.CommunityPost
}

// Title returns the referenced post's title for templates.
func (f FolderPost) Title() string {
	switch f.PostType {
	case models.PostKindRecruit:
		return f.Recruit.Title
	case models.PostKindSeeking:
		return f.Seeking.Title
	default:
		return f.Community.Title
	}
}

// WriterName returns the referenced post's writer nickname.
func (f FolderPost) WriterName() string {
	switch f.PostType {
	case models.PostKindRecruit:
		return f.Recruit.Writer.Nickname
	case models.PostKindSeeking:
		return f.Seeking.Writer.Nickname
	default:
		return f.Community.Writer.Nickname
	}
}

// PostID returns the referenced post id.
func (f FolderPost) PostID() uint {
	switch f.PostType {
	case models.PostKindRecruit:
		return f.Recruit.ID
	case models.PostKindSeeking:
		return f.Seeking.ID
	default:
		return f.Community.ID
	}
}

// ListFolder resolves an owned folder's entries against the three
// collections, preserving the folder's insertion order and silently
// dropping references whose post no longer exists.
func ListFolder(userID, folderID uint) (*models.Folder, []FolderPost, error) {
	folder, err := getFolderWithEntries(userID, folderID)
	if err != nil {
		return nil, nil, err
	}

	var recruitIDs, seekingIDs, communityIDs []uint
	for _, e := range folder.Entries {
		switch e.PostType {
		case models.PostKindRecruit:
			recruitIDs = append(recruitIDs, e.PostID)
		case models.PostKindSeeking:
			seekingIDs = append(seekingIDs, e.PostID)
		case models.PostKindCommunity:
			communityIDs = append(communityIDs, e.PostID)
		}
	}

	recruits := make(map[uint]*models.RecruitmentPost)
	if len(recruitIDs) > 0 {
		var posts []models.RecruitmentPost
		if err := db.DB.Preload("Writer").Where("id IN ?", recruitIDs).Find(&posts).Error; err != nil {
			return nil, nil, err
		}
		for i := range posts {
			recruits[posts[i].ID] = &posts[i]
		}
	}
	seekings := make(map[uint]*models.TeamSeekingPost)
	if len(seekingIDs) > 0 {
		var posts []models.TeamSeekingPost
		if err := db.DB.Preload("Writer").Where("id IN ?", seekingIDs).Find(&posts).Error; err != nil {
			return nil, nil, err
		}
		for i := range posts {
			seekings[posts[i].ID] = &posts[i]
		}
	}
	communities := make(map[uint]*models.CommunityPost)
	if len(communityIDs) > 0 {
		var posts []models.CommunityPost
		if err := db.DB.Preload("Writer").Where("id IN ?", communityIDs).Find(&posts).Error; err != nil {
			return nil, nil, err
		}
		for i := range posts {
			communities[posts[i].ID] = &posts[i]
		}
	}

	var resolved []FolderPost
	for _, e := range folder.Entries {
		fp := FolderPost{PostType: e.PostType, AddedAt: e.AddedAt}
		switch e.PostType {
		case models.PostKindRecruit:
			if p, ok := recruits[e.PostID]; ok {
				fp.Recruit = p
				resolved = append(resolved, fp)
			}
		case models.PostKindSeeking:
			if p, ok := seekings[e.PostID]; ok {
				fp.Seeking = p
				resolved = append(resolved, fp)
			}
		case models.PostKindCommunity:
			if p, ok := communities[e.PostID]; ok {
				fp.Community = p
				resolved = append(resolved, fp)
			}
		}
	}
	return folder, resolved, nil
}
