package main

import (
	"fmt"
	"time"

	"github.com/event-horizon/internal/config"
	"github.com/event-horizon/internal/constants"
	"github.com/event-horizon/internal/logger"
	"github.com/event-horizon/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加分类
	categories := []models.Category{
		{
			NameJSON: models.JSON(map[string]interface{}{
				"zh-CN": "技术沙龙",
				"zh-TW": "技術沙龍",
				"en-US": "Tech Meetups",
			}),
			Slug:      "tech",
			SortOrder: 300,
		},
		{
			NameJSON: models.JSON(map[string]interface{}{
				"zh-CN": "音乐演出",
				"zh-TW": "音樂演出",
				"en-US": "Live Music",
			}),
			Slug:      "music",
			SortOrder: 200,
		},
		{
			NameJSON: models.JSON(map[string]interface{}{
				"zh-CN": "工作坊",
				"zh-TW": "工作坊",
				"en-US": "Workshops",
			}),
			Slug:      "workshop",
			SortOrder: 100,
		},
	}

	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("slug = ?", cat.Slug).First(&existing).Error; err != nil {
			// 不存在则创建
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Slug, err)
			} else {
				stdLog.Printf("Created category: %s", cat.Slug)
			}
		} else {
			stdLog.Printf("Category already exists: %s", cat.Slug)
		}
	}

	// 获取分类ID
	categoryIDs := map[string]uint{}
	var categoryList []models.Category
	if err := models.DB.Where("slug IN ?", []string{"tech", "music", "workshop"}).Find(&categoryList).Error; err != nil {
		stdLog.Printf("Failed to load categories: %v", err)
	}
	for _, cat := range categoryList {
		categoryIDs[cat.Slug] = cat.ID
	}
	techID := categoryIDs["tech"]
	musicID := categoryIDs["music"]
	workshopID := categoryIDs["workshop"]

	// 演示主办方账号
	organizerEmail := "organizer@eventhorizon.local"
	var organizer models.User
	if err := models.DB.Where("email = ?", organizerEmail).First(&organizer).Error; err != nil {
		hashed, hashErr := bcrypt.GenerateFromPassword([]byte("organizer123"), bcrypt.DefaultCost)
		if hashErr != nil {
			stdLog.Fatalf("Failed to hash organizer password: %v", hashErr)
		}
		now := time.Now()
		organizer = models.User{
			Email:           organizerEmail,
			PasswordHash:    string(hashed),
			DisplayName:     "演示主办方",
			Role:            constants.UserRoleOrganizer,
			Status:          constants.UserStatusActive,
			Locale:          "zh-CN",
			EmailVerifiedAt: &now,
		}
		if err := models.DB.Create(&organizer).Error; err != nil {
			stdLog.Fatalf("Failed to create organizer user: %v", err)
		}
		stdLog.Printf("Created organizer user: %s", organizerEmail)
	} else {
		stdLog.Printf("Organizer user already exists: %s", organizerEmail)
	}

	// 添加活动
	now := time.Now()
	publishedAt := now.Add(-48 * time.Hour)
	events := []models.Event{
		{
			Slug:        "go-meetup-2026",
			Title:       "Go 开发者线下聚会 2026",
			Description: "并发模式、泛型实践与线上问答，欢迎带问题来现场交流。",
			CategoryID:  &techID,
			Venue:       "上海市徐汇区漕河泾开发区会议中心",
			StartsAt:    now.AddDate(0, 1, 0),
			EndsAt:      now.AddDate(0, 1, 0).Add(3 * time.Hour),
			Capacity:    120,
			TicketPrice: models.NewMoneyFromDecimal(decimal.Zero),
			Currency:    "CNY",
			Tags:        models.StringArray([]string{"Go", "后端", "线下"}),
			Status:      constants.EventStatusPublished,
			PublishedAt: &publishedAt,
		},
		{
			Slug:        "jazz-night-spring",
			Title:       "春日爵士之夜",
			Description: "三支乐队连演，含一杯特调饮品。",
			CategoryID:  &musicID,
			Venue:       "北京市朝阳区 Blue Note",
			StartsAt:    now.AddDate(0, 0, 14),
			EndsAt:      now.AddDate(0, 0, 14).Add(4 * time.Hour),
			Capacity:    80,
			TicketPrice: models.NewMoneyFromDecimal(decimal.NewFromFloat(180)),
			Currency:    "CNY",
			Tags:        models.StringArray([]string{"爵士", "现场", "夜场"}),
			Status:      constants.EventStatusPublished,
			PublishedAt: &publishedAt,
		},
		{
			Slug:        "pottery-workshop",
			Title:       "手作陶艺体验工作坊",
			Description: "小班教学，材料全包，成品可带走。",
			CategoryID:  &workshopID,
			Venue:       "杭州市西湖区文创园 3 号楼",
			StartsAt:    now.AddDate(0, 0, 7),
			EndsAt:      now.AddDate(0, 0, 7).Add(2 * time.Hour),
			Capacity:    12,
			TicketPrice: models.NewMoneyFromDecimal(decimal.NewFromFloat(260)),
			Currency:    "CNY",
			Tags:        models.StringArray([]string{"手作", "小班"}),
			Status:      constants.EventStatusPublished,
			PublishedAt: &publishedAt,
		},
		{
			Slug:        "cloud-native-summit",
			Title:       "云原生技术峰会（筹备中）",
			Description: "议程筹备中，发布后开放报名。",
			CategoryID:  &techID,
			Venue:       "深圳市南山区科兴科学园",
			StartsAt:    now.AddDate(0, 2, 0),
			EndsAt:      now.AddDate(0, 2, 1),
			Capacity:    500,
			TicketPrice: models.NewMoneyFromDecimal(decimal.NewFromFloat(399)),
			Currency:    "CNY",
			Tags:        models.StringArray([]string{"云原生", "Kubernetes"}),
			Status:      constants.EventStatusDraft,
		},
	}

	for _, event := range events {
		event.OrganizerID = organizer.ID
		var existing models.Event
		if err := models.DB.Where("slug = ?", event.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&event).Error; err != nil {
				stdLog.Printf("Failed to create event %s: %v", event.Slug, err)
			} else {
				stdLog.Printf("Created event: %s", event.Slug)
			}
		} else {
			existing.Title = event.Title
			existing.Description = event.Description
			existing.CategoryID = event.CategoryID
			existing.Venue = event.Venue
			existing.StartsAt = event.StartsAt
			existing.EndsAt = event.EndsAt
			existing.Capacity = event.Capacity
			existing.TicketPrice = event.TicketPrice
			existing.Currency = event.Currency
			existing.Tags = event.Tags
			if err := models.DB.Save(&existing).Error; err != nil {
				stdLog.Printf("Failed to update event %s: %v", event.Slug, err)
			} else {
				stdLog.Printf("Updated event: %s", event.Slug)
			}
		}
	}

	// 更新网站配置
	configData := map[string]interface{}{
		"site_name":     "Event Horizon",
		"site_currency": constants.SiteCurrencyDefault,
		"contact": map[string]string{
			"email": "support@eventhorizon.local",
		},
	}

	var setting models.Setting
	if err := models.DB.Where("key = ?", constants.SettingKeySiteConfig).First(&setting).Error; err != nil {
		// 不存在则创建
		setting = models.Setting{
			Key:       constants.SettingKeySiteConfig,
			ValueJSON: models.JSON(configData),
		}
		if err := models.DB.Create(&setting).Error; err != nil {
			stdLog.Printf("Failed to create setting: %v", err)
		} else {
			stdLog.Println("Created site config")
		}
	} else {
		// 更新
		setting.ValueJSON = models.JSON(configData)
		if err := models.DB.Save(&setting).Error; err != nil {
			stdLog.Printf("Failed to update setting: %v", err)
		} else {
			stdLog.Println("Updated site config")
		}
	}

	fmt.Println("\n✅ Test data created successfully!")
	fmt.Println("Summary:")
	fmt.Println("- 3 Categories")
	fmt.Println("- 4 Events (3 published + 1 draft)")
	fmt.Println("- 1 Organizer user")
	fmt.Println("- Site configuration")
}
