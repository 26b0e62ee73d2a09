package i18n

type Key string

const (
	NavHome          Key = "navHome"
	NavDevices       Key = "navDevices"
	NavAbout         Key = "navAbout"
	NavWiki          Key = "navWiki"
	Language         Key = "language"
	ThemeLabel       Key = "theme"
	ThemeLightLabel  Key = "themeLight"
	ThemeDarkLabel   Key = "themeDark"
	ThemeSystemLabel Key = "themeSystem"

	HomeTitle       Key = "homeTitle"
	HomeIntro       Key = "homeIntro"
	HomeCTA         Key = "homeCta"
	Features        Key = "features"
	FeatureCustom   Key = "featureCustom"
	FeatureCustomD  Key = "featureCustomDesc"
	FeatureUpdates  Key = "featureUpdates"
	FeatureUpdatesD Key = "featureUpdatesDesc"
	FeatureStock    Key = "featureStock"
	FeatureStockD   Key = "featureStockDesc"

	Gallery             Key = "gallery"
	HighlightPure       Key = "highlightPure"
	HighlightPureD      Key = "highlightPureDesc"
	HighlightPractical  Key = "highlightPractical"
	HighlightPracticalD Key = "highlightPracticalDesc"
	HighlightSmooth     Key = "highlightSmooth"
	HighlightSmoothD    Key = "highlightSmoothDesc"
	HighlightSecurity   Key = "highlightSecurity"
	HighlightSecurityD  Key = "highlightSecurityDesc"
	HighlightSimple     Key = "highlightSimple"
	HighlightSimpleD    Key = "highlightSimpleDesc"
	HighlightThemes     Key = "highlightThemes"
	HighlightThemesD    Key = "highlightThemesDesc"

	AboutTitle   Key = "aboutTitle"
	AboutStory   Key = "aboutStory"
	AboutMission Key = "aboutMission"
	AboutWelcome Key = "aboutWelcome"
	AboutTeam    Key = "aboutTeam"

	SearchDevices  Key = "searchDevices"
	Error          Key = "error"
	ErrorTryAgain  Key = "errorTryAgain"
	FailedToLoad   Key = "failedToLoad"
	AndroidVersion Key = "androidVersion"
	LatestBuild    Key = "latestBuild"
	NoBuildsYet    Key = "noBuildsYet"
	NoDevices      Key = "noDevices"
	Deprecated     Key = "deprecated"

	Changelog           Key = "changelog"
	Latest              Key = "latest"
	Archive             Key = "archive"
	Images              Key = "images"
	InstallInstructions Key = "installInstructions"
	Maintainer          Key = "maintainer"
	DeviceNotFound      Key = "deviceNotFound"
	FileSize            Key = "fileSize"
	Checksum            Key = "checksum"
	NoNewChanges        Key = "noNewChanges"
	ChangelogFailed     Key = "changelogFailed"
	DeviceDataFailed    Key = "deviceDataFailed"

	PageNotFound Key = "pageNotFound"
	Footer       Key = "footer"
)

// Dictionary is immutable after package init.
type Dictionary map[Locale]map[Key]string

var dictionary = Dictionary{
	English: {
		NavHome:          "Home",
		NavDevices:       "Devices",
		NavAbout:         "About",
		NavWiki:          "Wiki",
		Language:         "日本語",
		ThemeLabel:       "Theme",
		ThemeLightLabel:  "Light",
		ThemeDarkLabel:   "Dark",
		ThemeSystemLabel: "System",

		HomeTitle:       "WitAqua",
		HomeIntro:       "WitAqua is a custom Android ROM developed by Japanese Android enthusiasts. The primary goal of this ROM is to deliver a stock Android experience, free from unnecessary bloatware.",
		HomeCTA:         "Download Now",
		Features:        "Features",
		FeatureCustom:   "Customizable Features",
		FeatureCustomD:  "Add some extra functionality with a few thoughtful, carefully selected features that enhance usability and personalization without compromising system performance.",
		FeatureUpdates:  "Frequent Stable Updates",
		FeatureUpdatesD: "These updates are carefully tested and designed to keep your system in a stable state while ensuring you always have the latest security patches and improvements.",
		FeatureStock:    "Stock Android Experience",
		FeatureStockD:   "Enjoy a clean, bloat-free interface that stays true to the pure Android design and functionality.",

		Gallery:             "Gallery",
		HighlightPure:       "Pure Android, Enhanced",
		HighlightPureD:      "Stock Android at its core, with useful improvements that keep things simple.",
		HighlightPractical:  "Practical Features That Fit Right In",
		HighlightPracticalD: "Useful additions that enhance daily use without getting in the way.",
		HighlightSmooth:     "Smooth & Lightweight",
		HighlightSmoothD:    "We enhance pure Android with only the most useful features, keeping it clean and functional.",
		HighlightSecurity:   "Regular Security Patch Updates",
		HighlightSecurityD:  "Regular security patches and updates straight from Google.",
		HighlightSimple:     "No Overwhelming Customizations",
		HighlightSimpleD:    "Customize what matters without digging through endless settings.",
		HighlightThemes:     "Theme Picker",
		HighlightThemesD:    "Easily switch up your look with a simple, lightweight theme selection.",

		AboutTitle:   "About WitAqua",
		AboutStory:   "We're a small team of passionate Android enthusiasts from Japan, and we've come together to create something special. It all started because we love the simplicity of stock Android but felt it could use a little more personality and practicality without all the unnecessary bloat.",
		AboutMission: "We kept the core Android experience intact while adding some carefully chosen enhancements to make your device more customizable, and just plain better to use. We're not a big corporation or a fancy tech giant. We're just a group of like-minded developers who love tinkering with Android and making it better for everyone.",
		AboutWelcome: "So, whether you're here to try something new, or just curious about what we're building, welcome to WitAqua!",
		AboutTeam:    "Our Team",

		SearchDevices:  "Search devices...",
		Error:          "Error: ",
		ErrorTryAgain:  "Please try again later or contact support.",
		FailedToLoad:   "Failed to load data",
		AndroidVersion: "Android",
		LatestBuild:    "Latest build:",
		NoBuildsYet:    "No builds available yet",
		NoDevices:      "No devices found",
		Deprecated:     "Deprecated",

		Changelog:           "Changelog",
		Latest:              "Latest",
		Archive:             "Archive",
		Images:              "Images",
		InstallInstructions: "Install Instructions",
		Maintainer:          "Maintainer:",
		DeviceNotFound:      "Device not found",
		FileSize:            "File Size:",
		Checksum:            "SHA-256:",
		NoNewChanges:        "No new changes since the last build.",
		ChangelogFailed:     "Failed to load changelog for %s (%s). Please try again later.",
		DeviceDataFailed:    "Failed to load device data. Please try again later.",

		PageNotFound: "Page not found",
		Footer:       "Minimal, Liquid, Android.",
	},
	Japanese: {
		NavHome:          "ホーム",
		NavDevices:       "デバイス",
		NavAbout:         "概要",
		NavWiki:          "Wiki",
		Language:         "English",
		ThemeLabel:       "テーマ",
		ThemeLightLabel:  "ライト",
		ThemeDarkLabel:   "ダーク",
		ThemeSystemLabel: "システム",

		HomeTitle:       "WitAqua",
		HomeIntro:       "WitAquaは日本のAndroid愛好家によって開発されたカスタムROMです。不要なブロートウェアを排除し、素のAndroidに近い体験を届けることを目標としています。",
		HomeCTA:         "今すぐダウンロード",
		Features:        "機能",
		FeatureCustom:   "カスタマイズ機能",
		FeatureCustomD:  "システムのパフォーマンスを損なうことなく、使いやすさとパーソナライズを高める厳選された機能を追加しています。",
		FeatureUpdates:  "頻繁で安定したアップデート",
		FeatureUpdatesD: "最新のセキュリティパッチと改善を提供しつつ、システムを安定した状態に保つよう慎重にテストされています。",
		FeatureStock:    "素のAndroid体験",
		FeatureStockD:   "純粋なAndroidのデザインと機能に忠実な、すっきりとしたインターフェースをお楽しみください。",

		Gallery:             "ギャラリー",
		HighlightPure:       "ピュアで強化されたAndroid",
		HighlightPureD:      "純粋なAndroidをメインに、便利な改善が加えられています。",
		HighlightPractical:  "便利な機能がスムーズに組み込まれています",
		HighlightPracticalD: "日常の使い勝手を高める便利な機能を、邪魔にならない形で追加しています。",
		HighlightSmooth:     "スムーズで軽量",
		HighlightSmoothD:    "本当に便利な機能だけを加え、すっきりと使いやすいAndroidに仕上げています。",
		HighlightSecurity:   "定期的なセキュリティパッチとアップデート",
		HighlightSecurityD:  "Googleから直接定期的なセキュリティパッチとアップデート",
		HighlightSimple:     "過度なカスタマイズなし",
		HighlightSimpleD:    "必要以上にカスタマイズせずに設定を変更できます。",
		HighlightThemes:     "テーマ選択",
		HighlightThemesD:    "シンプルで軽量なテーマ選択で見た目を簡単に変更できます。",

		AboutTitle:   "WitAquaについて",
		AboutStory:   "私たちは日本のAndroid愛好家の小さなチームで、特別なものを作るために集まりました。ストックAndroidのシンプルさが好きでしたが、不要なブロートウェアなしでもう少しパーソナリティと実用性が必要だと感じたことがきっかけでした。",
		AboutMission: "Androidの核となる体験を損なうことなく、デバイスをよりカスタマイズしやすく、より使いやすくするために慎重に選ばれた機能強化を加えました。私たちは大企業や華やかな技術大手ではありません。Androidをいじるのが好きで、みんなのためにより良いものを作りたいと思っている開発者のグループです。",
		AboutWelcome: "新しいものを試してみたい方も、私たちが何を作っているのか興味がある方も、WitAquaへようこそ！",
		AboutTeam:    "私たちのチーム",

		SearchDevices:  "デバイスを検索...",
		Error:          "エラー: ",
		ErrorTryAgain:  "後でもう一度お試しいただくか、サポートにお問い合わせください。",
		FailedToLoad:   "データの読み込みに失敗しました",
		AndroidVersion: "Android",
		LatestBuild:    "最新ビルド：",
		NoBuildsYet:    "ビルドはまだありません",
		NoDevices:      "デバイスが見つかりません",
		Deprecated:     "非推奨",

		Changelog:           "変更履歴",
		Latest:              "最新",
		Archive:             "アーカイブ",
		Images:              "イメージ",
		InstallInstructions: "インストール手順",
		Maintainer:          "メンテナー：",
		DeviceNotFound:      "デバイスが見つかりません",
		FileSize:            "ファイルサイズ:",
		Checksum:            "SHA-256:",
		NoNewChanges:        "前回のビルド以降、新しい変更はありません。",
		ChangelogFailed:     "%s (%s) の変更履歴を読み込めませんでした。後でもう一度お試しください。",
		DeviceDataFailed:    "デバイス情報を読み込めませんでした。後でもう一度お試しください。",

		PageNotFound: "ページが見つかりません",
		Footer:       "Minimal, Liquid, Android.",
	},
}

// T looks key up for l, falling back to English and then to the key itself.
func T(l Locale, key Key) string {
	if s, ok := dictionary[l][key]; ok {
		return s
	}
	if s, ok := dictionary[English][key]; ok {
		return s
	}
	return string(key)
}
