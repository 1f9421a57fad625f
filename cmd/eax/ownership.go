package main

import (
	"io/fs"
	"os/user"
	"strconv"

	"github.com/sirupsen/logrus"
)

const unknownOwner = "?"

// lookupOwner resolves uid through the user database, falling back to the
// numeric id when it has no name.
func lookupOwner(uid uint32, log logrus.FieldLogger) string {
	id := strconv.FormatUint(uint64(uid), 10)
	u, err := user.LookupId(id)
	if err != nil {
		log.WithError(err).WithField("uid", id).Debug("owner name not resolved")
		return id
	}
	return u.Username
}

func lookupGroup(gid uint32, log logrus.FieldLogger) string {
	id := strconv.FormatUint(uint64(gid), 10)
	g, err := user.LookupGroupId(id)
	if err != nil {
		log.WithError(err).WithField("gid", id).Debug("group name not resolved")
		return id
	}
	return g.Name
}

// ownership returns the owner and group names of info.
func ownership(info fs.FileInfo, log logrus.FieldLogger) (owner, group string) {
	uid, gid, ok := ownerIDs(info)
	if !ok {
		return unknownOwner, unknownOwner
	}
	return lookupOwner(uid, log), lookupGroup(gid, log)
}
