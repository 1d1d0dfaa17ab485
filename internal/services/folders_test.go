package services

import (
	"errors"
	"testing"

	"linker/internal/db"
	"linker/internal/models"
)

func TestCreateFolderDuplicateName(t *testing.T) {
	resetTables(t)
	user := makeUser(t, "owner")

	if _, err := CreateFolder(user.ID, "  공모전 모음  "); err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}
	if _, err := CreateFolder(user.ID, "공모전 모음"); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate name: err = %v, want ErrConflict", err)
	}
	if _, err := CreateFolder(user.ID, ""); !errors.Is(err, ErrValidation) {
		t.Errorf("empty name: err = %v, want ErrValidation", err)
	}

	// Same name under a different user is fine.
	other := makeUser(t, "other")
	if _, err := CreateFolder(other.ID, "공모전 모음"); err != nil {
		t.Errorf("same name, different owner: %v", err)
	}
}

func TestRenameFolder(t *testing.T) {
	resetTables(t)
	user := makeUser(t, "owner")

	a, err := CreateFolder(user.ID, "첫 폴더")
	if err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}
	if _, err := CreateFolder(user.ID, "둘째 폴더"); err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}

	if _, err := RenameFolder(user.ID, a.ID, "둘째 폴더"); !errors.Is(err, ErrConflict) {
		t.Errorf("rename to sibling name: err = %v, want ErrConflict", err)
	}

	renamed, err := RenameFolder(user.ID, a.ID, "새 이름")
	if err != nil {
		t.Fatalf("RenameFolder: %v", err)
	}
	if renamed.Name != "새 이름" {
		t.Errorf("name = %q, want %q", renamed.Name, "새 이름")
	}

	// Renaming to its own current name is not a conflict.
	if _, err := RenameFolder(user.ID, a.ID, "새 이름"); err != nil {
		t.Errorf("rename to own name: %v", err)
	}
}

func TestFolderOwnership(t *testing.T) {
	resetTables(t)
	owner := makeUser(t, "owner")
	intruder := makeUser(t, "intruder")

	folder, err := CreateFolder(owner.ID, "비밀 폴더")
	if err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}

	if _, err := RenameFolder(intruder.ID, folder.ID, "훔친 폴더"); !errors.Is(err, ErrNotFound) {
		t.Errorf("intruder rename: err = %v, want ErrNotFound", err)
	}
	if err := DeleteFolder(intruder.ID, folder.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("intruder delete: err = %v, want ErrNotFound", err)
	}
	if _, _, err := ListFolder(intruder.ID, folder.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("intruder list: err = %v, want ErrNotFound", err)
	}
}

func TestAddFolderEntryEligibility(t *testing.T) {
	resetTables(t)
	owner := makeUser(t, "owner")
	writer := makeUser(t, "writer")

	folder, err := CreateFolder(owner.ID, "폴더")
	if err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}
	recruit := makeRecruit(t, writer.ID, "모집 글", "project")
	community := makeCommunity(t, writer.ID, "자유 글", models.CommunityCategoryFree)

	// Not scrapped / liked yet: both refused.
	if _, err := AddFolderEntry(owner.ID, folder.ID, recruit.ID, models.PostKindRecruit); !errors.Is(err, ErrNotEligible) {
		t.Errorf("unscrapped recruit: err = %v, want ErrNotEligible", err)
	}
	if _, err := AddFolderEntry(owner.ID, folder.ID, community.ID, models.PostKindCommunity); !errors.Is(err, ErrNotEligible) {
		t.Errorf("unliked community: err = %v, want ErrNotEligible", err)
	}

	scrapRecruit(t, recruit, owner.ID)
	likeCommunity(t, community, owner.ID)

	if _, err := AddFolderEntry(owner.ID, folder.ID, recruit.ID, models.PostKindRecruit); err != nil {
		t.Fatalf("add scrapped recruit: %v", err)
	}
	if _, err := AddFolderEntry(owner.ID, folder.ID, community.ID, models.PostKindCommunity); err != nil {
		t.Fatalf("add liked community: %v", err)
	}

	// Same (post, kind) twice conflicts.
	if _, err := AddFolderEntry(owner.ID, folder.ID, recruit.ID, models.PostKindRecruit); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate entry: err = %v, want ErrConflict", err)
	}

	if _, err := AddFolderEntry(owner.ID, folder.ID, recruit.ID, "bogus"); !errors.Is(err, ErrValidation) {
		t.Errorf("bogus kind: err = %v, want ErrValidation", err)
	}
}

func TestRemoveFolderEntry(t *testing.T) {
	resetTables(t)
	owner := makeUser(t, "owner")
	writer := makeUser(t, "writer")

	folder, err := CreateFolder(owner.ID, "폴더")
	if err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}
	seeking := makeSeeking(t, writer.ID, "팀 구해요", "design")
	scrapSeeking(t, seeking, owner.ID)

	if _, err := AddFolderEntry(owner.ID, folder.ID, seeking.ID, models.PostKindSeeking); err != nil {
		t.Fatalf("AddFolderEntry: %v", err)
	}

	updated, err := RemoveFolderEntry(owner.ID, folder.ID, seeking.ID, models.PostKindSeeking)
	if err != nil {
		t.Fatalf("RemoveFolderEntry: %v", err)
	}
	if len(updated.Entries) != 0 {
		t.Errorf("entries after remove = %d, want 0", len(updated.Entries))
	}
	if _, err := RemoveFolderEntry(owner.ID, folder.ID, seeking.ID, models.PostKindSeeking); !errors.Is(err, ErrNotFound) {
		t.Errorf("remove again: err = %v, want ErrNotFound", err)
	}
}

func TestListFolderOrderAndDanglingRefs(t *testing.T) {
	resetTables(t)
	owner := makeUser(t, "owner")
	writer := makeUser(t, "writer")

	folder, err := CreateFolder(owner.ID, "모아보기")
	if err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}

	recruit := makeRecruit(t, writer.ID, "모집", "project")
	seeking := makeSeeking(t, writer.ID, "구직", "develop")
	community := makeCommunity(t, writer.ID, "잡담", models.CommunityCategoryFree)
	scrapRecruit(t, recruit, owner.ID)
	scrapSeeking(t, seeking, owner.ID)
	likeCommunity(t, community, owner.ID)

	for _, add := range []struct {
		id   uint
		kind string
	}{
		{community.ID, models.PostKindCommunity},
		{recruit.ID, models.PostKindRecruit},
		{seeking.ID, models.PostKindSeeking},
	} {
		if _, err := AddFolderEntry(owner.ID, folder.ID, add.id, add.kind); err != nil {
			t.Fatalf("AddFolderEntry %s: %v", add.kind, err)
		}
	}

	// Delete the underlying recruit post; its reference must be dropped
	// silently, keeping the others in insertion order.
	if err := db.DB.Delete(&models.RecruitmentPost{}, recruit.ID).Error; err != nil {
		t.Fatalf("delete recruit post: %v", err)
	}

	_, posts, err := ListFolder(owner.ID, folder.ID)
	if err != nil {
		t.Fatalf("ListFolder: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("len(posts) = %d, want 2", len(posts))
	}
	if posts[0].PostType != models.PostKindCommunity || posts[0].Title() != "잡담" {
		t.Errorf("posts[0] = %s %q, want community 잡담", posts[0].PostType, posts[0].Title())
	}
	if posts[1].PostType != models.PostKindSeeking || posts[1].Title() != "구직" {
		t.Errorf("posts[1] = %s %q, want seeking 구직", posts[1].PostType, posts[1].Title())
	}
	if posts[0].WriterName() == "" {
		t.Errorf("writer not resolved for folder post")
	}
}

func TestDeleteFolderRemovesEntries(t *testing.T) {
	resetTables(t)
	owner := makeUser(t, "owner")
	writer := makeUser(t, "writer")

	folder, err := CreateFolder(owner.ID, "지울 폴더")
	if err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}
	community := makeCommunity(t, writer.ID, "글", models.CommunityCategoryInfo)
	likeCommunity(t, community, owner.ID)
	if _, err := AddFolderEntry(owner.ID, folder.ID, community.ID, models.PostKindCommunity); err != nil {
		t.Fatalf("AddFolderEntry: %v", err)
	}

	if err := DeleteFolder(owner.ID, folder.ID); err != nil {
		t.Fatalf("DeleteFolder: %v", err)
	}

	var entries int64
	db.DB.Model(&models.FolderEntry{}).Where("folder_id = ?", folder.ID).Count(&entries)
	if entries != 0 {
		t.Errorf("orphan entries = %d, want 0", entries)
	}
	folders, err := Folders(owner.ID)
	if err != nil {
		t.Fatalf("Folders: %v", err)
	}
	if len(folders) != 0 {
		t.Errorf("folders after delete = %d, want 0", len(folders))
	}
}
