// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backend

import (
	"context"
	"fmt"
	"time"

	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// SystemGroup is the group every account created by the backend joins.
const SystemGroup = "system"

// Seed makes sure the root account exists with the given password. With
// demo set it also stores a small project and screen hierarchy owned by
// root, unless root already owns projects.
func (b *Backend) Seed(ctx context.Context, rootPassword string, demo bool) error {
	if rootPassword == "" {
		return fmt.Errorf("seed: %w", remote.Validation("root password is empty"))
	}
	if _, err := b.AddUser(ctx, RootUser, rootPassword); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if !demo {
		return nil
	}

	sess, err := b.Login(ctx, remote.Credentials{UserName: RootUser, Password: rootPassword})
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	defer sess.Close(ctx)

	existing, err := sess.QueryService().FindAll(ctx, remote.KindProject, remote.Filter{OwnerID: sess.UserID(), Limit: 1})
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}
	if _, err := sess.UpdateService().SaveAndReturnArray(ctx, demoGraph(b.now())); err != nil {
		return fmt.Errorf("seed demo data: %w", err)
	}
	b.logger.Info().Msg("demo data stored")
	return nil
}

// AddUser creates an account in the system group, or resets the password
// of the account when the name is taken.
func (b *Backend) AddUser(ctx context.Context, omeName, password string) (*remote.Experimenter, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, remote.APIUsage("%v", err)
	}

	var user *remote.Experimenter
	err = b.store.InTx(ctx, func(tx store.Store) error {
		d := dao{st: tx}
		group, err := b.ensureGroup(ctx, d)
		if err != nil {
			return err
		}
		users, err := typed[*remote.Experimenter](ctx, d, remote.KindExperimenter, store.ObjectFilter{Name: omeName})
		if err != nil {
			return err
		}
		if len(users) > 0 {
			user = users[0]
		} else {
			exp := &remote.Experimenter{OmeName: omeName, FirstName: omeName, LastName: omeName}
			id, err := b.createOwned(ctx, d, exp, 0, group)
			if err != nil {
				return err
			}
			exp.ID = id
			_, err = tx.CreateLink(ctx, store.Link{
				Kind:      linkGroupMember,
				ParentID:  group,
				ChildID:   id,
				OwnerID:   id,
				GroupID:   group,
				CreatedAt: b.now().UTC(),
			})
			if err != nil {
				return storeFault(err)
			}
			user = exp
		}
		return storeFault(tx.SetPasswordHash(ctx, user.ID, string(hash)))
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (b *Backend) ensureGroup(ctx context.Context, d dao) (int64, error) {
	groups, err := typed[*remote.ExperimenterGroup](ctx, d, remote.KindExperimenterGroup, store.ObjectFilter{Name: SystemGroup})
	if err != nil {
		return 0, err
	}
	if len(groups) > 0 {
		return groups[0].ID, nil
	}
	return b.createOwned(ctx, d, &remote.ExperimenterGroup{Name: SystemGroup}, 0, 0)
}

func (b *Backend) createOwned(ctx context.Context, d dao, obj remote.Object, owner, group int64) (int64, error) {
	if err := validate(obj); err != nil {
		return 0, err
	}
	row, err := toRow(obj)
	if err != nil {
		return 0, remote.APIUsage("%v", err)
	}
	row.OwnerID, row.GroupID, row.Permissions = owner, group, defaultPerms
	row.CreatedAt = b.now().UTC()
	created, err := d.st.CreateObject(ctx, row)
	if err != nil {
		return 0, storeFault(err)
	}
	return created.ID, nil
}

func demoGraph(now time.Time) []remote.Object {
	newImage := func(name string, x, y, z, c, t int) *remote.Image {
		acquired := now.UTC()
		img := &remote.Image{Name: name, AcquisitionDate: &acquired}
		img.Pixels.Add(&remote.Pixels{
			SizeX: x, SizeY: y, SizeZ: z, SizeC: c, SizeT: t,
			PixelsType:     "uint8",
			DimensionOrder: "XYZCT",
			PhysicalSizeX:  0.5,
			PhysicalSizeY:  0.5,
		})
		return img
	}

	tag := &remote.TagAnnotation{TextValue: "demo"}

	project := &remote.Project{Name: "Demo project", Description: "Created by the development server"}
	cells := &remote.Dataset{Name: "Cells"}
	cells.LinkImage(newImage("cells-01", 128, 96, 5, 3, 2))
	cells.LinkImage(newImage("cells-02", 96, 128, 3, 2, 1))
	tissue := &remote.Dataset{Name: "Tissue"}
	tissue.LinkImage(newImage("tissue-01", 256, 256, 1, 1, 1))
	project.LinkDataset(cells)
	project.LinkDataset(tissue)
	project.AnnotationLinks.Add(&remote.AnnotationLink{Child: tag})

	orphan := &remote.Dataset{Name: "Unfiled"}

	screen := &remote.Screen{Name: "Demo screen"}
	plate := &remote.Plate{Name: "Plate 1"}
	for row := range 2 {
		for col := range 3 {
			w := &remote.Well{Row: row, Column: col}
			w.Images.Add(newImage(fmt.Sprintf("well-%c%d", 'A'+row, col+1), 64, 64, 1, 2, 1))
			plate.Wells.Add(w)
		}
	}
	screen.LinkPlate(plate)

	return []remote.Object{project, orphan, screen}
}
