package ds

import (
	"fmt"
	"time"
)

// Описание приложения. Информация о сборке выводится по флагу -version
// и пишется в лог при старте
type AppInfo struct {
	appName     string
	version     string
	buildTime   string
	buildOS     string
	buildCommit string
	startTime   string
}

// Конструктор для AppInfo
func NewAppInfo() *AppInfo {
	return &AppInfo{
		appName:   "durcalc",
		startTime: time.Now().Format(time.RFC3339),
	}
}

// Опции для конструктора, используются для модификации полей структуры
func (i *AppInfo) WithVersion(version string) *AppInfo {
	i.version = version
	return i
}

func (i *AppInfo) WithBuildTime(buildTime string) *AppInfo {
	i.buildTime = buildTime
	return i
}

func (i *AppInfo) WithBuildOS(buildOS string) *AppInfo {
	i.buildOS = buildOS
	return i
}

func (i *AppInfo) WithBuildCommit(commit string) *AppInfo {
	i.buildCommit = commit
	return i
}

func (i *AppInfo) Version() string {
	return i.version
}

func (i *AppInfo) StartTime() string {
	return i.startTime
}

// Строковое представление версии приложения
func (i *AppInfo) String() string {
	return fmt.Sprintf("%s@%s (Commit: %s; BuildTime: %s; BuildOS: %s)", i.appName, i.version, i.buildCommit, i.buildTime, i.buildOS)
}
