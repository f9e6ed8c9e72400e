package config

type Cloudinary struct {
	CloudName string `env:"CLOUDINARY_CLOUD_NAME,required"`
	APIKey    string `env:"CLOUDINARY_API_KEY,required"`
	APISecret string `env:"CLOUDINARY_API_SECRET,required"`
	Folder    string `env:"CLOUDINARY_FOLDER" envDefault:"products"`
}
