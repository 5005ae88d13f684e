package db

import "gorm.io/gorm"

type Repositories struct {
	Users      *UserRepository
	Activities *ActivityRepository
	Profiles   *ProfileRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:      NewUserRepository(database),
		Activities: NewActivityRepository(database),
		Profiles:   NewProfileRepository(database),
	}
}
